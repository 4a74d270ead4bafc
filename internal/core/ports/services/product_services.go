package services

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
)

// ProductSvcFacade defines access to the battery catalog.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error)
}
