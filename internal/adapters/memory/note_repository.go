package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
)

// NoteRepository keeps sticky notes in a map keyed by id.
type NoteRepository struct {
	mu    sync.RWMutex
	notes map[string]domain.Note
}

// NewNoteRepository creates an empty in-memory note store.
func NewNoteRepository() *NoteRepository {
	return &NoteRepository{notes: make(map[string]domain.Note)}
}

var _ portsrepo.NoteRepositoryFacade = (*NoteRepository)(nil)

func (r *NoteRepository) FindNoteByID(_ context.Context, noteID string) (*domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.notes[noteID]
	if !ok {
		return nil, fmt.Errorf("note %s: %w", noteID, apperrors.ErrNotFound)
	}
	return &note, nil
}

func (r *NoteRepository) ListNotes(_ context.Context, limit int, offset int) ([]domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Note, 0, len(r.notes))
	for _, note := range r.notes {
		out = append(out, note)
	}
	// Pinned first, then newest first.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return paginate(out, limit, offset), nil
}

func (r *NoteRepository) SaveNote(_ context.Context, note domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[note.NoteID]; exists {
		return fmt.Errorf("note %s: %w", note.NoteID, apperrors.ErrDuplicate)
	}
	r.notes[note.NoteID] = note
	return nil
}

func (r *NoteRepository) UpdateNote(_ context.Context, note domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[note.NoteID]; !exists {
		return fmt.Errorf("note %s: %w", note.NoteID, apperrors.ErrNotFound)
	}
	r.notes[note.NoteID] = note
	return nil
}

func (r *NoteRepository) DeleteNote(_ context.Context, noteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[noteID]; !exists {
		return fmt.Errorf("note %s: %w", noteID, apperrors.ErrNotFound)
	}
	delete(r.notes, noteID)
	return nil
}
