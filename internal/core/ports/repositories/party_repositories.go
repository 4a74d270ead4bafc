package repositories

import (
	"context"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// PartyReader defines read operations for customer/supplier data.
type PartyReader interface {
	// FindPartyByID retrieves a party by its unique identifier.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves a paginated list of parties of one kind.
	ListParties(ctx context.Context, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error)
}

// PartyWriter defines write operations for customer/supplier data.
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates an existing party's details.
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeactivateParty marks a party as inactive.
	DeactivateParty(ctx context.Context, partyID string, userID string, now time.Time) error
}

// PartyRepositoryFacade combines all party repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
