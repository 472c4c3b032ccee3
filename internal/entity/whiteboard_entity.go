package entity

import (
	"time"

	"github.com/google/uuid"
)

type WhiteboardFolder struct {
	Id        uuid.UUID
	Name      string
	Documents []*WhiteboardDocument
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WhiteboardDocument owns an opaque canvas blob. The server stores it as-is.
type WhiteboardDocument struct {
	Id             uuid.UUID
	Title          string
	ExcalidrawJson string
	FolderId       *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
