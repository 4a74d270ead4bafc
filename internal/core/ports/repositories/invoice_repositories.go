package repositories

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// InvoiceListFilter narrows ListInvoices results. Zero values mean "no filter".
type InvoiceListFilter struct {
	Kind    domain.InvoiceKind
	PartyID string
}

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice, with its items, by id.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated, filtered list of invoices (newest first).
	ListInvoices(ctx context.Context, filter InvoiceListFilter, limit int, offset int) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice and its items atomically.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice replaces an existing invoice and its items atomically.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice and its items.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
