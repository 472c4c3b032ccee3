package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title     string     `gorm:"type:varchar(500);not null"`
	DueDate   *time.Time `gorm:"index"`
	Status    string     `gorm:"type:varchar(16);not null;default:Todo;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime:false"`
}

func (Task) TableName() string {
	return "tasks"
}
