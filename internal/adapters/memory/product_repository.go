package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
)

// ProductRepository keeps the battery catalog in a map keyed by id.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

// NewProductRepository creates an empty in-memory product store.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]domain.Product)}
}

var _ portsrepo.ProductRepositoryFacade = (*ProductRepository)(nil)

func (r *ProductRepository) FindProductByID(_ context.Context, productID string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
	}
	return &product, nil
}

func (r *ProductRepository) ListProducts(_ context.Context, limit int, offset int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		out = append(out, product)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

func (r *ProductRepository) SaveProduct(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ProductID]; exists {
		return fmt.Errorf("product %s: %w", product.ProductID, apperrors.ErrDuplicate)
	}
	r.products[product.ProductID] = product
	return nil
}

func (r *ProductRepository) UpdateProduct(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ProductID]; !exists {
		return fmt.Errorf("product %s: %w", product.ProductID, apperrors.ErrNotFound)
	}
	r.products[product.ProductID] = product
	return nil
}

func (r *ProductRepository) AdjustStock(_ context.Context, productID string, delta int, userID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
	}
	product.StockQty += delta
	product.LastUpdatedAt = now
	product.LastUpdatedBy = userID
	r.products[productID] = product
	return nil
}
