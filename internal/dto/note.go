package dto

import (
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// CreateNoteRequest defines the data needed to create a sticky note.
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Color   string `json:"color"`
	DueDate string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Pinned  bool   `json:"pinned"`
}

// UpdateNoteRequest defines the data allowed for updating a note.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
	DueDate *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Pinned  *bool   `json:"pinned"`
	Status  *string `json:"status" binding:"omitempty,oneof=OPEN DONE"`
}

// NoteResponse defines the data returned for a note.
type NoteResponse struct {
	NoteID        string            `json:"noteID"`
	Title         string            `json:"title"`
	Content       string            `json:"content"`
	Color         string            `json:"color"`
	Status        domain.NoteStatus `json:"status"`
	DueDate       string            `json:"dueDate,omitempty"`
	Pinned        bool              `json:"pinned"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ToNoteResponse converts a domain.Note to a NoteResponse DTO.
func ToNoteResponse(n *domain.Note) NoteResponse {
	res := NoteResponse{
		NoteID:        n.NoteID,
		Title:         n.Title,
		Content:       n.Content,
		Color:         n.Color,
		Status:        n.Status,
		Pinned:        n.Pinned,
		CreatedAt:     n.CreatedAt,
		LastUpdatedAt: n.LastUpdatedAt,
	}
	if n.DueDate != nil {
		res.DueDate = n.DueDate.Format(domain.DateFormat)
	}
	return res
}

// ToListNoteResponse converts a slice of domain.Note to response DTOs.
func ToListNoteResponse(notes []domain.Note) []NoteResponse {
	res := make([]NoteResponse, len(notes))
	for i := range notes {
		res[i] = ToNoteResponse(&notes[i])
	}
	return res
}

// ListNotesParams defines query parameters for listing notes.
type ListNotesParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}
