package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/google/uuid"
)

// partyServiceImpl implements the PartySvcFacade interface.
type partyServiceImpl struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyServiceImpl creates a new party service.
func NewPartyServiceImpl(repo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyServiceImpl{partyRepo: repo}
}

var _ portssvc.PartySvcFacade = (*partyServiceImpl)(nil)

func (s *partyServiceImpl) CreateParty(ctx context.Context, req dto.CreatePartyRequest, userID string) (*domain.Party, error) {
	now := time.Now().UTC()
	party := domain.Party{
		PartyID:  uuid.NewString(),
		Kind:     req.Kind,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		VATNo:    req.VATNo,
		Notes:    req.Notes,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("party_id", party.PartyID))
		return nil, err
	}

	s.LogInfo(ctx, "Party created", slog.String("party_id", party.PartyID), slog.String("kind", string(party.Kind)))
	return &party, nil
}

func (s *partyServiceImpl) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	return s.partyRepo.FindPartyByID(ctx, partyID)
}

func (s *partyServiceImpl) ListParties(ctx context.Context, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error) {
	return s.partyRepo.ListParties(ctx, kind, limit, offset)
}

func (s *partyServiceImpl) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	if req.VATNo != nil {
		party.VATNo = *req.VATNo
	}
	if req.Notes != nil {
		party.Notes = *req.Notes
	}
	party.LastUpdatedAt = time.Now().UTC()
	party.LastUpdatedBy = userID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to update party", slog.String("party_id", partyID))
		return nil, err
	}
	return party, nil
}

func (s *partyServiceImpl) DeactivateParty(ctx context.Context, partyID string, userID string) error {
	// Soft delete only: the party may be referenced by invoices, vouchers and
	// ledger history that must stay readable.
	if err := s.partyRepo.DeactivateParty(ctx, partyID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate party", slog.String("party_id", partyID))
		return err
	}
	s.LogInfo(ctx, "Party deactivated", slog.String("party_id", partyID))
	return nil
}
