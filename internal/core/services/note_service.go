package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/google/uuid"
)

// noteServiceImpl implements the NoteSvcFacade interface.
type noteServiceImpl struct {
	BaseService
	noteRepo portsrepo.NoteRepositoryFacade
}

// NewNoteServiceImpl creates a new sticky note service.
func NewNoteServiceImpl(repo portsrepo.NoteRepositoryFacade) portssvc.NoteSvcFacade {
	return &noteServiceImpl{noteRepo: repo}
}

var _ portssvc.NoteSvcFacade = (*noteServiceImpl)(nil)

func (s *noteServiceImpl) CreateNote(ctx context.Context, req dto.CreateNoteRequest, userID string) (*domain.Note, error) {
	now := time.Now().UTC()
	note := domain.Note{
		NoteID:  uuid.NewString(),
		Title:   req.Title,
		Content: req.Content,
		Color:   req.Color,
		Status:  domain.NoteOpen,
		Pinned:  req.Pinned,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.DueDate != "" {
		due, err := domain.ParseDate(req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid due date: %s", apperrors.ErrValidation, req.DueDate)
		}
		note.DueDate = &due
	}

	if err := s.noteRepo.SaveNote(ctx, note); err != nil {
		s.LogError(ctx, err, "Failed to save note", slog.String("note_id", note.NoteID))
		return nil, err
	}
	return &note, nil
}

func (s *noteServiceImpl) GetNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	return s.noteRepo.FindNoteByID(ctx, noteID)
}

func (s *noteServiceImpl) ListNotes(ctx context.Context, limit int, offset int) ([]domain.Note, error) {
	return s.noteRepo.ListNotes(ctx, limit, offset)
}

func (s *noteServiceImpl) UpdateNote(ctx context.Context, noteID string, req dto.UpdateNoteRequest, userID string) (*domain.Note, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to find note %s: %w", noteID, err)
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Color != nil {
		note.Color = *req.Color
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			note.DueDate = nil
		} else {
			due, err := domain.ParseDate(*req.DueDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid due date: %s", apperrors.ErrValidation, *req.DueDate)
			}
			note.DueDate = &due
		}
	}
	if req.Pinned != nil {
		note.Pinned = *req.Pinned
	}
	if req.Status != nil {
		note.Status = domain.NoteStatus(*req.Status)
	}
	note.LastUpdatedAt = time.Now().UTC()
	note.LastUpdatedBy = userID

	if err := s.noteRepo.UpdateNote(ctx, *note); err != nil {
		s.LogError(ctx, err, "Failed to update note", slog.String("note_id", noteID))
		return nil, err
	}
	return note, nil
}

func (s *noteServiceImpl) DeleteNote(ctx context.Context, noteID string, userID string) error {
	if err := s.noteRepo.DeleteNote(ctx, noteID); err != nil {
		s.LogError(ctx, err, "Failed to delete note", slog.String("note_id", noteID))
		return err
	}
	s.LogInfo(ctx, "Note deleted", slog.String("note_id", noteID))
	return nil
}
