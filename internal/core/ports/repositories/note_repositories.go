package repositories

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// NoteReader defines read operations for sticky notes.
type NoteReader interface {
	// FindNoteByID retrieves a note by id.
	FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error)

	// ListNotes retrieves all notes, pinned first then newest first.
	ListNotes(ctx context.Context, limit int, offset int) ([]domain.Note, error)
}

// NoteWriter defines write operations for sticky notes.
type NoteWriter interface {
	// SaveNote persists a new note.
	SaveNote(ctx context.Context, note domain.Note) error

	// UpdateNote updates an existing note.
	UpdateNote(ctx context.Context, note domain.Note) error

	// DeleteNote removes a note.
	DeleteNote(ctx context.Context, noteID string) error
}

// NoteRepositoryFacade combines all note repository interfaces.
type NoteRepositoryFacade interface {
	NoteReader
	NoteWriter
}
