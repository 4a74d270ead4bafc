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

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgxUserRepository creates a new repository for user data.
func NewPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{pool: pool}
}

const userColumns = `user_id, username, name, password_hash, auth_provider, provider_id, refresh_token_hash, refresh_token_expires_at, created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.AuthProvider,
		&user.ProviderID,
		&user.RefreshTokenHash,
		&user.RefreshTokenExpiresAt,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1;`, userColumns)
	return scanUser(r.pool.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1;`, userColumns)
	return scanUser(r.pool.QueryRow(ctx, query, username))
}

func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE auth_provider = $1 AND provider_id = $2;`, userColumns)
	return scanUser(r.pool.QueryRow(ctx, query, provider, providerID))
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, username, name, password_hash, auth_provider, provider_id, refresh_token_hash, refresh_token_expires_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.AuthProvider,
		user.ProviderID,
		user.RefreshTokenHash,
		user.RefreshTokenExpiresAt,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users SET username = $1, name = $2, password_hash = $3, last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $6;
	`
	tag, err := r.pool.Exec(ctx, query,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
		user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time) error {
	query := `
		UPDATE users SET refresh_token_hash = $1, refresh_token_expires_at = $2
		WHERE user_id = $3;
	`
	tag, err := r.pool.Exec(ctx, query, tokenHash, expiresAt, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
