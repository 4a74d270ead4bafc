package services

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
)

// InvoiceSvcFacade defines invoice operations. Every mutation keeps the party
// ledger in step: create appends a SALE/PURCHASE entry, update reverses the
// old entry and appends a fresh one, delete reverses it.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter, limit int, offset int) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string, userID string) error
}
