package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateNoteRequest derives the title from content when it is left blank.
type CreateNoteRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content" validate:"required"`
}

type UpdateNoteRequest struct {
	Id      uuid.UUID `json:"-"`
	Title   *string   `json:"title" validate:"required"`
	Content *string   `json:"content" validate:"required"`
}

type NoteResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
