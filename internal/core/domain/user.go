package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a dashboard user.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Username     string       `json:"username"`
	Name         string       `json:"name"`
	PasswordHash string       `json:"-"` // bcrypt, empty for external providers
	AuthProvider AuthProvider `json:"authProvider"`
	ProviderID   string       `json:"-"` // External provider's user id, nullable

	// Refresh token state; only the hash is stored.
	RefreshTokenHash      string     `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`

	AuditFields
}
