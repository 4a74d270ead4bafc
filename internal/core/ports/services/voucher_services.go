package services

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
)

// VoucherSvcFacade defines voucher operations, mirroring the invoice facade
// with RECEIPT/PAYMENT ledger entries correlated by voucher number.
type VoucherSvcFacade interface {
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error)
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, filter portsrepo.VoucherListFilter, limit int, offset int) ([]domain.Voucher, error)
	UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest, userID string) (*domain.Voucher, error)
	DeleteVoucher(ctx context.Context, voucherID string, userID string) error
}
