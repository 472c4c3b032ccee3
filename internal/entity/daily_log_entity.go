package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and URL format of a calendar day.
const DateLayout = "2006-01-02"

type DailyLog struct {
	Id            uuid.UUID
	Date          time.Time // midnight UTC
	WorkedOn      string
	Blockers      string
	Learned       string
	TomorrowFocus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ParseDay parses a YYYY-MM-DD string into midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// TruncateDay drops the clock part of t, keeping its calendar day.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
