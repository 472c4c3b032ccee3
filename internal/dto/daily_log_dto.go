package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDailyLogRequest struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	WorkedOn      *string `json:"workedOn" validate:"required"`
	Blockers      *string `json:"blockers" validate:"required"`
	Learned       *string `json:"learned" validate:"required"`
	TomorrowFocus *string `json:"tomorrowFocus" validate:"required"`
}

type UpdateDailyLogRequest struct {
	Id            uuid.UUID `json:"-"`
	WorkedOn      *string   `json:"workedOn" validate:"required"`
	Blockers      *string   `json:"blockers" validate:"required"`
	Learned       *string   `json:"learned" validate:"required"`
	TomorrowFocus *string   `json:"tomorrowFocus" validate:"required"`
}

type DailyLogResponse struct {
	Id            uuid.UUID `json:"id"`
	Date          string    `json:"date"` // YYYY-MM-DD
	WorkedOn      string    `json:"workedOn"`
	Blockers      string    `json:"blockers"`
	Learned       string    `json:"learned"`
	TomorrowFocus string    `json:"tomorrowFocus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
