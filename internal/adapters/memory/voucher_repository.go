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

// VoucherRepository keeps receipt/payment vouchers in a map keyed by id.
type VoucherRepository struct {
	mu       sync.RWMutex
	vouchers map[string]domain.Voucher
}

// NewVoucherRepository creates an empty in-memory voucher store.
func NewVoucherRepository() *VoucherRepository {
	return &VoucherRepository{vouchers: make(map[string]domain.Voucher)}
}

var _ portsrepo.VoucherRepositoryFacade = (*VoucherRepository)(nil)

func (r *VoucherRepository) FindVoucherByID(_ context.Context, voucherID string) (*domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	voucher, ok := r.vouchers[voucherID]
	if !ok {
		return nil, fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
	}
	return &voucher, nil
}

func (r *VoucherRepository) ListVouchers(_ context.Context, filter portsrepo.VoucherListFilter, limit int, offset int) ([]domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Voucher, 0)
	for _, voucher := range r.vouchers {
		if filter.Kind != "" && voucher.Kind != filter.Kind {
			continue
		}
		if filter.PartyID != "" && voucher.PartyID != filter.PartyID {
			continue
		}
		out = append(out, voucher)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return paginate(out, limit, offset), nil
}

func (r *VoucherRepository) SaveVoucher(_ context.Context, voucher domain.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vouchers[voucher.VoucherID]; exists {
		return fmt.Errorf("voucher %s: %w", voucher.VoucherID, apperrors.ErrDuplicate)
	}
	r.vouchers[voucher.VoucherID] = voucher
	return nil
}

func (r *VoucherRepository) UpdateVoucher(_ context.Context, voucher domain.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vouchers[voucher.VoucherID]; !exists {
		return fmt.Errorf("voucher %s: %w", voucher.VoucherID, apperrors.ErrNotFound)
	}
	r.vouchers[voucher.VoucherID] = voucher
	return nil
}

func (r *VoucherRepository) DeleteVoucher(_ context.Context, voucherID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vouchers[voucherID]; !exists {
		return fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
	}
	delete(r.vouchers, voucherID)
	return nil
}
