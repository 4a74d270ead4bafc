package dto

import (
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to add a battery to the catalog.
type CreateProductRequest struct {
	Name       string          `json:"name" binding:"required"`
	Brand      string          `json:"brand"`
	CapacityAh int             `json:"capacityAh" binding:"gte=0"`
	UnitPrice  decimal.Decimal `json:"unitPrice" binding:"required,gt=0"`
	StockQty   int             `json:"stockQty" binding:"gte=0"`
}

// UpdateProductRequest defines the data allowed for updating a product.
type UpdateProductRequest struct {
	Name       *string          `json:"name"`
	Brand      *string          `json:"brand"`
	CapacityAh *int             `json:"capacityAh"`
	UnitPrice  *decimal.Decimal `json:"unitPrice"`
	StockQty   *int             `json:"stockQty"`
	IsActive   *bool            `json:"isActive"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	CapacityAh    int             `json:"capacityAh"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	StockQty      int             `json:"stockQty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToProductResponse converts a domain.Product to a ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Brand:         p.Brand,
		CapacityAh:    p.CapacityAh,
		UnitPrice:     p.UnitPrice,
		StockQty:      p.StockQty,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}
