package repositories

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// VoucherListFilter narrows ListVouchers results. Zero values mean "no filter".
type VoucherListFilter struct {
	Kind    domain.VoucherKind
	PartyID string
}

// VoucherReader defines read operations for vouchers.
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher by id.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves a paginated, filtered list of vouchers (newest first).
	ListVouchers(ctx context.Context, filter VoucherListFilter, limit int, offset int) ([]domain.Voucher, error)
}

// VoucherWriter defines write operations for vouchers.
type VoucherWriter interface {
	// SaveVoucher persists a new voucher.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error

	// UpdateVoucher updates an existing voucher.
	UpdateVoucher(ctx context.Context, voucher domain.Voucher) error

	// DeleteVoucher removes a voucher.
	DeleteVoucher(ctx context.Context, voucherID string) error
}

// VoucherRepositoryFacade combines all voucher repository interfaces.
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}
