package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/bsmapp/battery_shop_backend/internal/utils"
	"github.com/google/uuid"
)

// userServiceImpl implements the UserSvcFacade interface.
type userServiceImpl struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserServiceImpl creates a new user service.
func NewUserServiceImpl(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userServiceImpl{userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

func (s *userServiceImpl) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username %s: %w", req.Username, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username %s: %w", req.Username, err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	return &user, nil
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userServiceImpl) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

// FindOrCreateGoogleUser resolves a Google identity to a local user record,
// creating one on first login. The email doubles as the username.
func (s *userServiceImpl) FindOrCreateGoogleUser(ctx context.Context, providerID string, email string, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, domain.ProviderGoogle, providerID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	username := strings.ToLower(email)
	now := time.Now().UTC()
	created := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Name:         name,
		AuthProvider: domain.ProviderGoogle,
		ProviderID:   providerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	created.CreatedBy = created.UserID
	created.LastUpdatedBy = created.UserID

	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		s.LogError(ctx, err, "Failed to save google user", slog.String("username", username))
		return nil, err
	}

	s.LogInfo(ctx, "Google user created", slog.String("user_id", created.UserID), slog.String("username", username))
	return &created, nil
}
