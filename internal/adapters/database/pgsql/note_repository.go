package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNoteRepository struct {
	pool *pgxpool.Pool
}

// NewPgxNoteRepository creates a new repository for sticky notes.
func NewPgxNoteRepository(pool *pgxpool.Pool) portsrepo.NoteRepositoryFacade {
	return &PgxNoteRepository{pool: pool}
}

func (r *PgxNoteRepository) FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	query := `
		SELECT note_id, title, content, color, status, due_date, pinned, created_at, created_by, last_updated_at, last_updated_by
		FROM notes
		WHERE note_id = $1;
	`
	var note domain.Note
	err := r.pool.QueryRow(ctx, query, noteID).Scan(
		&note.NoteID,
		&note.Title,
		&note.Content,
		&note.Color,
		&note.Status,
		&note.DueDate,
		&note.Pinned,
		&note.CreatedAt,
		&note.CreatedBy,
		&note.LastUpdatedAt,
		&note.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note by ID %s: %w", noteID, err)
	}
	return &note, nil
}

func (r *PgxNoteRepository) ListNotes(ctx context.Context, limit int, offset int) ([]domain.Note, error) {
	query := `
		SELECT note_id, title, content, color, status, due_date, pinned, created_at, created_by, last_updated_at, last_updated_by
		FROM notes
		ORDER BY pinned DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Note, error) {
		var note domain.Note
		err := row.Scan(
			&note.NoteID,
			&note.Title,
			&note.Content,
			&note.Color,
			&note.Status,
			&note.DueDate,
			&note.Pinned,
			&note.CreatedAt,
			&note.CreatedBy,
			&note.LastUpdatedAt,
			&note.LastUpdatedBy,
		)
		return note, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes: %w", err)
	}
	return notes, nil
}

func (r *PgxNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	query := `
		INSERT INTO notes (note_id, title, content, color, status, due_date, pinned, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		note.NoteID,
		note.Title,
		note.Content,
		note.Color,
		note.Status,
		note.DueDate,
		note.Pinned,
		note.CreatedAt,
		note.CreatedBy,
		note.LastUpdatedAt,
		note.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save note %s: %w", note.NoteID, err)
	}
	return nil
}

func (r *PgxNoteRepository) UpdateNote(ctx context.Context, note domain.Note) error {
	query := `
		UPDATE notes SET title = $1, content = $2, color = $3, status = $4, due_date = $5, pinned = $6, last_updated_at = $7, last_updated_by = $8
		WHERE note_id = $9;
	`
	tag, err := r.pool.Exec(ctx, query,
		note.Title,
		note.Content,
		note.Color,
		note.Status,
		note.DueDate,
		note.Pinned,
		note.LastUpdatedAt,
		note.LastUpdatedBy,
		note.NoteID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note %s: %w", note.NoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNoteRepository) DeleteNote(ctx context.Context, noteID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE note_id = $1;`, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", noteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
