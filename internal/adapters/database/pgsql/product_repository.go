package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// NewPgxProductRepository creates a new repository for the battery catalog.
func NewPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{pool: pool}
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, name, brand, capacity_ah, unit_price, stock_qty, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM products
		WHERE product_id = $1;
	`
	var product domain.Product
	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&product.ProductID,
		&product.Name,
		&product.Brand,
		&product.CapacityAh,
		&product.UnitPrice,
		&product.StockQty,
		&product.IsActive,
		&product.CreatedAt,
		&product.CreatedBy,
		&product.LastUpdatedAt,
		&product.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	return &product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	query := `
		SELECT product_id, name, brand, capacity_ah, unit_price, stock_qty, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM products
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		var product domain.Product
		err := row.Scan(
			&product.ProductID,
			&product.Name,
			&product.Brand,
			&product.CapacityAh,
			&product.UnitPrice,
			&product.StockQty,
			&product.IsActive,
			&product.CreatedAt,
			&product.CreatedBy,
			&product.LastUpdatedAt,
			&product.LastUpdatedBy,
		)
		return product, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, name, brand, capacity_ah, unit_price, stock_qty, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Brand,
		product.CapacityAh,
		product.UnitPrice,
		product.StockQty,
		product.IsActive,
		product.CreatedAt,
		product.CreatedBy,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ProductID, err)
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products SET name = $1, brand = $2, capacity_ah = $3, unit_price = $4, stock_qty = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE product_id = $9;
	`
	tag, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Brand,
		product.CapacityAh,
		product.UnitPrice,
		product.StockQty,
		product.IsActive,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
		product.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) AdjustStock(ctx context.Context, productID string, delta int, userID string, now time.Time) error {
	query := `
		UPDATE products SET stock_qty = stock_qty + $1, last_updated_at = $2, last_updated_by = $3
		WHERE product_id = $4;
	`
	tag, err := r.pool.Exec(ctx, query, delta, now, userID, productID)
	if err != nil {
		return fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
