package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
)

// UserRepository keeps users in a map keyed by id, with username and
// provider-id indexes.
type UserRepository struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	byUsername map[string]string
	byProvider map[string]string
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[string]domain.User),
		byUsername: make(map[string]string),
		byProvider: make(map[string]string),
	}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func providerKey(provider domain.AuthProvider, providerID string) string {
	return fmt.Sprintf("%s/%s", provider, providerID)
}

func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", username, apperrors.ErrNotFound)
	}
	user := r.users[userID]
	return &user, nil
}

func (r *UserRepository) FindUserByProviderID(_ context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byProvider[providerKey(provider, providerID)]
	if !ok {
		return nil, fmt.Errorf("provider identity: %w", apperrors.ErrNotFound)
	}
	user := r.users[userID]
	return &user, nil
}

func (r *UserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.UserID]; exists {
		return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrDuplicate)
	}
	if _, exists := r.byUsername[user.Username]; exists {
		return fmt.Errorf("username %s: %w", user.Username, apperrors.ErrDuplicate)
	}

	r.users[user.UserID] = user
	r.byUsername[user.Username] = user.UserID
	if user.ProviderID != "" {
		r.byProvider[providerKey(user.AuthProvider, user.ProviderID)] = user.UserID
	}
	return nil
}

func (r *UserRepository) UpdateUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, exists := r.users[user.UserID]
	if !exists {
		return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrNotFound)
	}
	if old.Username != user.Username {
		delete(r.byUsername, old.Username)
		r.byUsername[user.Username] = user.UserID
	}
	r.users[user.UserID] = user
	return nil
}

func (r *UserRepository) UpdateRefreshToken(_ context.Context, userID string, tokenHash string, expiresAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	user.RefreshTokenHash = tokenHash
	user.RefreshTokenExpiresAt = expiresAt
	r.users[userID] = user
	return nil
}
