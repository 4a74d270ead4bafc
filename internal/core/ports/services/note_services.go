package services

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
)

// NoteSvcFacade defines sticky note / task operations.
type NoteSvcFacade interface {
	CreateNote(ctx context.Context, req dto.CreateNoteRequest, userID string) (*domain.Note, error)
	GetNoteByID(ctx context.Context, noteID string) (*domain.Note, error)
	ListNotes(ctx context.Context, limit int, offset int) ([]domain.Note, error)
	UpdateNote(ctx context.Context, noteID string, req dto.UpdateNoteRequest, userID string) (*domain.Note, error)
	DeleteNote(ctx context.Context, noteID string, userID string) error
}
