package domain

import "time"

// NoteStatus is the lifecycle state of a sticky note / task.
type NoteStatus string

const (
	NoteOpen NoteStatus = "OPEN"
	NoteDone NoteStatus = "DONE"
)

// Note is a sticky note or follow-up task on the dashboard.
type Note struct {
	NoteID  string     `json:"noteID"` // Primary Key (UUID)
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Color   string     `json:"color"` // UI hint, nullable
	Status  NoteStatus `json:"status"`
	DueDate *time.Time `json:"dueDate"` // Optional
	Pinned  bool       `json:"pinned"`
	AuditFields
}
