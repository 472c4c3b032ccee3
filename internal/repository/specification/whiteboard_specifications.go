package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByFolderID struct {
	FolderID *uuid.UUID
}

func (s ByFolderID) Apply(db *gorm.DB) *gorm.DB {
	if s.FolderID == nil {
		return db.Where("folder_id IS NULL")
	}
	return db.Where("folder_id = ?", *s.FolderID)
}

// WithDocuments preloads the documents of a folder, newest edit first.
type WithDocuments struct{}

func (s WithDocuments) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Documents", func(tx *gorm.DB) *gorm.DB {
		for _, spec := range RecentlyEdited() {
			tx = spec.Apply(tx)
		}
		return tx
	})
}
