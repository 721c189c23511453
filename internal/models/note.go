package models

import "time"

// Memoable types a note can be attached to.
const (
	MemoableClient      = "Client"
	MemoableAppointment = "Appointment"
)

// Note is a free-text annotation owned by a client or an appointment.
type Note struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Body string `gorm:"type:text;not null" json:"body"`

	MemoableType string `gorm:"size:20;not null;index:idx_notes_memoable,priority:1" json:"memoable_type"`
	MemoableID   uint   `gorm:"not null;index:idx_notes_memoable,priority:2" json:"memoable_id"`

	UserID *uint `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
