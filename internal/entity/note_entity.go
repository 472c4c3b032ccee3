package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteTitleLength is the hard cut applied when a title is derived from content.
const NoteTitleLength = 40

type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeriveNoteTitle returns the first NoteTitleLength characters of content.
// The cut counts runes so multi-byte text is never split mid-character.
func DeriveNoteTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= NoteTitleLength {
		return content
	}
	return string(runes[:NoteTitleLength])
}
