package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
)

// InvoiceRepository keeps invoices (with their items) in a map keyed by id.
type InvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]domain.Invoice
}

// NewInvoiceRepository creates an empty in-memory invoice store.
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{invoices: make(map[string]domain.Invoice)}
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	invoice, ok := r.invoices[invoiceID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return copyInvoice(invoice), nil
}

func (r *InvoiceRepository) ListInvoices(_ context.Context, filter portsrepo.InvoiceListFilter, limit int, offset int) ([]domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Invoice, 0)
	for _, invoice := range r.invoices {
		if filter.Kind != "" && invoice.Kind != filter.Kind {
			continue
		}
		if filter.PartyID != "" && invoice.PartyID != filter.PartyID {
			continue
		}
		out = append(out, *copyInvoice(invoice))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return paginate(out, limit, offset), nil
}

func (r *InvoiceRepository) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.invoices[invoice.InvoiceID]; exists {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceID, apperrors.ErrDuplicate)
	}
	r.invoices[invoice.InvoiceID] = *copyInvoice(invoice)
	return nil
}

func (r *InvoiceRepository) UpdateInvoice(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.invoices[invoice.InvoiceID]; !exists {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceID, apperrors.ErrNotFound)
	}
	r.invoices[invoice.InvoiceID] = *copyInvoice(invoice)
	return nil
}

func (r *InvoiceRepository) DeleteInvoice(_ context.Context, invoiceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.invoices[invoiceID]; !exists {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	delete(r.invoices, invoiceID)
	return nil
}

func copyInvoice(inv domain.Invoice) *domain.Invoice {
	out := inv
	out.Items = append([]domain.InvoiceItem(nil), inv.Items...)
	return &out
}
