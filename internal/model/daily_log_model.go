package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DailyLog struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Date          datatypes.Date `gorm:"not null;uniqueIndex:idx_daily_logs_date"`
	WorkedOn      string         `gorm:"type:text;not null"`
	Blockers      string         `gorm:"type:text;not null"`
	Learned       string         `gorm:"type:text;not null"`
	TomorrowFocus string         `gorm:"type:text;not null"`
	CreatedAt     time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime:false"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}
