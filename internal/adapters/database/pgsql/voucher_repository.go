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

type PgxVoucherRepository struct {
	pool *pgxpool.Pool
}

// NewPgxVoucherRepository creates a new repository for receipt/payment vouchers.
func NewPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{pool: pool}
}

func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `
		SELECT voucher_id, voucher_no, kind, party_id, voucher_date, amount, method, reference, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM vouchers
		WHERE voucher_id = $1;
	`
	var voucher domain.Voucher
	err := r.pool.QueryRow(ctx, query, voucherID).Scan(
		&voucher.VoucherID,
		&voucher.VoucherNo,
		&voucher.Kind,
		&voucher.PartyID,
		&voucher.Date,
		&voucher.Amount,
		&voucher.Method,
		&voucher.Reference,
		&voucher.Notes,
		&voucher.CreatedAt,
		&voucher.CreatedBy,
		&voucher.LastUpdatedAt,
		&voucher.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher by ID %s: %w", voucherID, err)
	}
	return &voucher, nil
}

func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, filter portsrepo.VoucherListFilter, limit int, offset int) ([]domain.Voucher, error) {
	query := `
		SELECT voucher_id, voucher_no, kind, party_id, voucher_date, amount, method, reference, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM vouchers
		WHERE ($1 = '' OR kind = $1)
		  AND ($2 = '' OR party_id = $2)
		ORDER BY voucher_date DESC, created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.pool.Query(ctx, query, string(filter.Kind), filter.PartyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query vouchers: %w", err)
	}
	defer rows.Close()

	vouchers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Voucher, error) {
		var voucher domain.Voucher
		err := row.Scan(
			&voucher.VoucherID,
			&voucher.VoucherNo,
			&voucher.Kind,
			&voucher.PartyID,
			&voucher.Date,
			&voucher.Amount,
			&voucher.Method,
			&voucher.Reference,
			&voucher.Notes,
			&voucher.CreatedAt,
			&voucher.CreatedBy,
			&voucher.LastUpdatedAt,
			&voucher.LastUpdatedBy,
		)
		return voucher, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vouchers: %w", err)
	}
	return vouchers, nil
}

func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	query := `
		INSERT INTO vouchers (voucher_id, voucher_no, kind, party_id, voucher_date, amount, method, reference, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		voucher.VoucherID,
		voucher.VoucherNo,
		voucher.Kind,
		voucher.PartyID,
		voucher.Date,
		voucher.Amount,
		voucher.Method,
		voucher.Reference,
		voucher.Notes,
		voucher.CreatedAt,
		voucher.CreatedBy,
		voucher.LastUpdatedAt,
		voucher.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save voucher %s: %w", voucher.VoucherID, err)
	}
	return nil
}

func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	query := `
		UPDATE vouchers SET voucher_date = $1, amount = $2, method = $3, reference = $4, notes = $5, last_updated_at = $6, last_updated_by = $7
		WHERE voucher_id = $8;
	`
	tag, err := r.pool.Exec(ctx, query,
		voucher.Date,
		voucher.Amount,
		voucher.Method,
		voucher.Reference,
		voucher.Notes,
		voucher.LastUpdatedAt,
		voucher.LastUpdatedBy,
		voucher.VoucherID,
	)
	if err != nil {
		return fmt.Errorf("failed to update voucher %s: %w", voucher.VoucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vouchers WHERE voucher_id = $1;`, voucherID)
	if err != nil {
		return fmt.Errorf("failed to delete voucher %s: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
