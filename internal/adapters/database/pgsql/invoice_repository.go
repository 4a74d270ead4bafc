package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgxInvoiceRepository creates a new repository for invoices and their items.
func NewPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{pool: pool}
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, invoice_no, kind, party_id, invoice_date, sub_total, vat_rate, vat_amount, grand_total, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE invoice_id = $1;
	`
	var invoice domain.Invoice
	err := r.pool.QueryRow(ctx, query, invoiceID).Scan(
		&invoice.InvoiceID,
		&invoice.InvoiceNo,
		&invoice.Kind,
		&invoice.PartyID,
		&invoice.Date,
		&invoice.SubTotal,
		&invoice.VATRate,
		&invoice.VATAmount,
		&invoice.GrandTotal,
		&invoice.Notes,
		&invoice.CreatedAt,
		&invoice.CreatedBy,
		&invoice.LastUpdatedAt,
		&invoice.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	invoice.Items, err = r.loadItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter, limit int, offset int) ([]domain.Invoice, error) {
	// Empty filter values match everything.
	query := `
		SELECT invoice_id, invoice_no, kind, party_id, invoice_date, sub_total, vat_rate, vat_amount, grand_total, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE ($1 = '' OR kind = $1)
		  AND ($2 = '' OR party_id = $2)
		ORDER BY invoice_date DESC, created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.pool.Query(ctx, query, string(filter.Kind), filter.PartyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invoice, error) {
		var invoice domain.Invoice
		err := row.Scan(
			&invoice.InvoiceID,
			&invoice.InvoiceNo,
			&invoice.Kind,
			&invoice.PartyID,
			&invoice.Date,
			&invoice.SubTotal,
			&invoice.VATRate,
			&invoice.VATAmount,
			&invoice.GrandTotal,
			&invoice.Notes,
			&invoice.CreatedAt,
			&invoice.CreatedBy,
			&invoice.LastUpdatedAt,
			&invoice.LastUpdatedBy,
		)
		return invoice, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}

	for i := range invoices {
		invoices[i].Items, err = r.loadItems(ctx, invoices[i].InvoiceID)
		if err != nil {
			return nil, err
		}
	}
	return invoices, nil
}

// SaveInvoice inserts the invoice and its items within a DB transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `
		INSERT INTO invoices (invoice_id, invoice_no, kind, party_id, invoice_date, sub_total, vat_rate, vat_amount, grand_total, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.InvoiceNo,
		invoice.Kind,
		invoice.PartyID,
		invoice.Date,
		invoice.SubTotal,
		invoice.VATRate,
		invoice.VATAmount,
		invoice.GrandTotal,
		invoice.Notes,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice %s: %w", invoice.InvoiceID, err)
	}

	if err := insertItems(ctx, tx, invoice); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

// UpdateInvoice rewrites the invoice row and replaces its items within a DB
// transaction.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `
		UPDATE invoices SET invoice_date = $1, sub_total = $2, vat_rate = $3, vat_amount = $4, grand_total = $5, notes = $6, last_updated_at = $7, last_updated_by = $8
		WHERE invoice_id = $9;
	`
	tag, err := tx.Exec(ctx, query,
		invoice.Date,
		invoice.SubTotal,
		invoice.VATRate,
		invoice.VATAmount,
		invoice.GrandTotal,
		invoice.Notes,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
		invoice.InvoiceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, invoice.InvoiceID); err != nil {
		return fmt.Errorf("failed to clear items of invoice %s: %w", invoice.InvoiceID, err)
	}
	if err := insertItems(ctx, tx, invoice); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	// invoice_items rows go with it via ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO invoice_items (item_id, invoice_id, product_id, name, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, item := range invoice.Items {
		batch.Queue(itemQuery,
			item.ItemID,
			invoice.InvoiceID,
			item.ProductID,
			item.Name,
			item.Quantity,
			item.UnitPrice,
			item.LineTotal,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert items for invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) loadItems(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT item_id, product_id, name, quantity, unit_price, line_total
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice items: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InvoiceItem, error) {
		var item domain.InvoiceItem
		err := row.Scan(
			&item.ItemID,
			&item.ProductID,
			&item.Name,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
		)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoice items: %w", err)
	}
	return items, nil
}
