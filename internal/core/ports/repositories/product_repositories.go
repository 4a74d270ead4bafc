package repositories

import (
	"context"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// ProductReader defines read operations for the battery catalog.
type ProductReader interface {
	// FindProductByID retrieves a product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for the battery catalog.
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// AdjustStock changes a product's stock quantity by delta (may be negative).
	AdjustStock(ctx context.Context, productID string, delta int, userID string, now time.Time) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
