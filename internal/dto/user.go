package dto

import (
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// RegisterUserRequest defines the data needed to create a user.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the access token issued on successful login.
// The refresh token travels in an HTTP-only cookie, not in the body.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RefreshResponse carries a re-issued access token.
type RefreshResponse struct {
	Token string `json:"token"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID       string              `json:"userID"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	AuthProvider domain.AuthProvider `json:"authProvider"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Username:     u.Username,
		Name:         u.Name,
		AuthProvider: u.AuthProvider,
		CreatedAt:    u.CreatedAt,
	}
}
