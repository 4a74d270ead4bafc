package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/google/uuid"
)

// productServiceImpl implements the ProductSvcFacade interface.
type productServiceImpl struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductServiceImpl creates a new product catalog service.
func NewProductServiceImpl(repo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productServiceImpl{productRepo: repo}
}

var _ portssvc.ProductSvcFacade = (*productServiceImpl)(nil)

func (s *productServiceImpl) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	now := time.Now().UTC()
	product := domain.Product{
		ProductID:  uuid.NewString(),
		Name:       req.Name,
		Brand:      req.Brand,
		CapacityAh: req.CapacityAh,
		UnitPrice:  req.UnitPrice,
		StockQty:   req.StockQty,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID), slog.String("name", product.Name))
	return &product, nil
}

func (s *productServiceImpl) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *productServiceImpl) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx, limit, offset)
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.CapacityAh != nil {
		product.CapacityAh = *req.CapacityAh
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}
	if req.StockQty != nil {
		product.StockQty = *req.StockQty
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}
