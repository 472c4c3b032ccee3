package specification

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ByDate struct {
	Date time.Time
}

func (s ByDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", datatypes.Date(s.Date))
}
