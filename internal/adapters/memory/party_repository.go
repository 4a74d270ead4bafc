package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
)

// PartyRepository keeps customers and suppliers in a map keyed by id.
type PartyRepository struct {
	mu      sync.RWMutex
	parties map[string]domain.Party
}

// NewPartyRepository creates an empty in-memory party store.
func NewPartyRepository() *PartyRepository {
	return &PartyRepository{parties: make(map[string]domain.Party)}
}

var _ portsrepo.PartyRepositoryFacade = (*PartyRepository)(nil)

func (r *PartyRepository) FindPartyByID(_ context.Context, partyID string) (*domain.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	party, ok := r.parties[partyID]
	if !ok {
		return nil, fmt.Errorf("party %s: %w", partyID, apperrors.ErrNotFound)
	}
	return &party, nil
}

func (r *PartyRepository) ListParties(_ context.Context, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Party, 0)
	for _, party := range r.parties {
		if party.Kind == kind {
			out = append(out, party)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

func (r *PartyRepository) SaveParty(_ context.Context, party domain.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.parties[party.PartyID]; exists {
		return fmt.Errorf("party %s: %w", party.PartyID, apperrors.ErrDuplicate)
	}
	r.parties[party.PartyID] = party
	return nil
}

func (r *PartyRepository) UpdateParty(_ context.Context, party domain.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.parties[party.PartyID]; !exists {
		return fmt.Errorf("party %s: %w", party.PartyID, apperrors.ErrNotFound)
	}
	r.parties[party.PartyID] = party
	return nil
}

func (r *PartyRepository) DeactivateParty(_ context.Context, partyID string, userID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	party, ok := r.parties[partyID]
	if !ok {
		return fmt.Errorf("party %s: %w", partyID, apperrors.ErrNotFound)
	}
	party.IsActive = false
	party.LastUpdatedAt = now
	party.LastUpdatedBy = userID
	r.parties[partyID] = party
	return nil
}

// paginate slices out one page, tolerating out-of-range offsets.
func paginate[T any](items []T, limit int, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
