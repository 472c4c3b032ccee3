package model

import (
	"time"

	"github.com/google/uuid"
)

type WhiteboardFolder struct {
	Id        uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Name      string               `gorm:"type:varchar(255);not null;index"`
	Documents []WhiteboardDocument `gorm:"foreignKey:FolderId;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time            `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time            `gorm:"autoUpdateTime:false"`
}

func (WhiteboardFolder) TableName() string {
	return "whiteboard_folders"
}

type WhiteboardDocument struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title          string     `gorm:"type:varchar(255);not null"`
	ExcalidrawJson string     `gorm:"type:text;not null"`
	FolderId       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime:false;index"`
}

func (WhiteboardDocument) TableName() string {
	return "whiteboard_documents"
}
