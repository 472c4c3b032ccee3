package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWhiteboardFolderRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateWhiteboardFolderRequest struct {
	Id   uuid.UUID `json:"-"`
	Name string    `json:"name" validate:"required"`
}

// WhiteboardSummary is the slim document shape nested under a folder.
type WhiteboardSummary struct {
	Id       uuid.UUID  `json:"id"`
	Title    string     `json:"title"`
	FolderId *uuid.UUID `json:"folderId"`
}

type WhiteboardFolderResponse struct {
	Id        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Documents []*WhiteboardSummary `json:"documents"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

type CreateWhiteboardRequest struct {
	Title          string     `json:"title" validate:"required"`
	ExcalidrawJson string     `json:"excalidrawJson"`
	FolderId       *uuid.UUID `json:"folderId"`
}

// UpdateWhiteboardRequest replaces every mutable field. A missing folderId
// moves the document out of its folder.
type UpdateWhiteboardRequest struct {
	Id             uuid.UUID  `json:"-"`
	Title          *string    `json:"title" validate:"required"`
	ExcalidrawJson *string    `json:"excalidrawJson" validate:"required"`
	FolderId       *uuid.UUID `json:"folderId"`
}

type WhiteboardResponse struct {
	Id             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	ExcalidrawJson string     `json:"excalidrawJson"`
	FolderId       *uuid.UUID `json:"folderId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
