package services

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
)

// UserSvcFacade defines user management operations.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindOrCreateGoogleUser resolves an external Google identity to a local
	// user, creating one on first login.
	FindOrCreateGoogleUser(ctx context.Context, providerID string, email string, name string) (*domain.User, error)
}
