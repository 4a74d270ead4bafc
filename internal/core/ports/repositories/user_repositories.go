package repositories

import (
	"context"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// UserReader defines read operations for users.
type UserReader interface {
	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByProviderID retrieves a user by external auth provider identity.
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores (or clears, with empty hash) the hashed
	// refresh token for a user.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
