package services

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
)

// PartyReaderSvc defines read access to customers and suppliers.
type PartyReaderSvc interface {
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error)
}

// PartySvcFacade combines read and write access to customers and suppliers.
type PartySvcFacade interface {
	PartyReaderSvc
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, userID string) (*domain.Party, error)
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error)
	DeactivateParty(ctx context.Context, partyID string, userID string) error
}
