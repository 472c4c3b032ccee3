package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityMessage is published on the in-process bus after every write.
type ActivityMessage struct {
	Type       string    `json:"type"`
	Entity     string    `json:"entity"`
	Id         uuid.UUID `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
