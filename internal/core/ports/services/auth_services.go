package services

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// AuthTokens bundles the credentials issued on a successful login.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string // Plaintext, handed to the client once; only its hash is stored
}

// AuthSvcFacade defines authentication operations.
type AuthSvcFacade interface {
	// Login verifies local credentials and issues tokens.
	Login(ctx context.Context, username string, password string) (*domain.User, *AuthTokens, error)

	// LoginWithGoogle exchanges an OAuth authorization code, resolves the
	// Google identity to a local user and issues tokens.
	LoginWithGoogle(ctx context.Context, code string) (*domain.User, *AuthTokens, error)

	// GoogleAuthURL builds the consent page redirect URL for the given state.
	GoogleAuthURL(state string) string

	// Refresh validates a refresh token and issues a new token pair,
	// rotating the stored refresh token.
	Refresh(ctx context.Context, refreshToken string) (*domain.User, *AuthTokens, error)

	// Logout invalidates the user's refresh token.
	Logout(ctx context.Context, userID string) error
}
