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

type PgxPartyRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPartyRepository creates a new repository for customer/supplier data.
func NewPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{pool: pool}
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `
		SELECT party_id, kind, name, phone, address, vat_no, notes, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM parties
		WHERE party_id = $1;
	`
	var party domain.Party
	err := r.pool.QueryRow(ctx, query, partyID).Scan(
		&party.PartyID,
		&party.Kind,
		&party.Name,
		&party.Phone,
		&party.Address,
		&party.VATNo,
		&party.Notes,
		&party.IsActive,
		&party.CreatedAt,
		&party.CreatedBy,
		&party.LastUpdatedAt,
		&party.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by ID %s: %w", partyID, err)
	}
	return &party, nil
}

func (r *PgxPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error) {
	query := `
		SELECT party_id, kind, name, phone, address, vat_no, notes, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM parties
		WHERE kind = $1
		ORDER BY name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Party, error) {
		var party domain.Party
		err := row.Scan(
			&party.PartyID,
			&party.Kind,
			&party.Name,
			&party.Phone,
			&party.Address,
			&party.VATNo,
			&party.Notes,
			&party.IsActive,
			&party.CreatedAt,
			&party.CreatedBy,
			&party.LastUpdatedAt,
			&party.LastUpdatedBy,
		)
		return party, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parties: %w", err)
	}
	return parties, nil
}

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	query := `
		INSERT INTO parties (party_id, kind, name, phone, address, vat_no, notes, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		party.PartyID,
		party.Kind,
		party.Name,
		party.Phone,
		party.Address,
		party.VATNo,
		party.Notes,
		party.IsActive,
		party.CreatedAt,
		party.CreatedBy,
		party.LastUpdatedAt,
		party.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save party %s: %w", party.PartyID, err)
	}
	return nil
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	query := `
		UPDATE parties SET name = $1, phone = $2, address = $3, vat_no = $4, notes = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE party_id = $9;
	`
	tag, err := r.pool.Exec(ctx, query,
		party.Name,
		party.Phone,
		party.Address,
		party.VATNo,
		party.Notes,
		party.IsActive,
		party.LastUpdatedAt,
		party.LastUpdatedBy,
		party.PartyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update party %s: %w", party.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPartyRepository) DeactivateParty(ctx context.Context, partyID string, userID string, now time.Time) error {
	query := `
		UPDATE parties SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE party_id = $3;
	`
	tag, err := r.pool.Exec(ctx, query, now, userID, partyID)
	if err != nil {
		return fmt.Errorf("failed to deactivate party %s: %w", partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
