package dto

import (
	"time"

	"github.com/BruksfildServices01/pantry-scheduler/internal/models"
)

type NoteDTO struct {
	ID           uint      `json:"id"`
	Body         string    `json:"body"`
	MemoableType string    `json:"memoable_type"`
	MemoableID   uint      `json:"memoable_id"`
	UserID       *uint     `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func Note(n *models.Note) NoteDTO {
	return NoteDTO{
		ID:           n.ID,
		Body:         n.Body,
		MemoableType: n.MemoableType,
		MemoableID:   n.MemoableID,
		UserID:       n.UserID,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func Notes(notes []models.Note) []NoteDTO {
	out := make([]NoteDTO, 0, len(notes))
	for i := range notes {
		out = append(out, Note(&notes[i]))
	}
	return out
}
