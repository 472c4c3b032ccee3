package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OrderBy sorts on one column. Pass several to break ties; they apply in order.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// RecentlyEdited lists notes and whiteboards newest edit first, id breaking ties.
func RecentlyEdited() []Specification {
	return []Specification{
		OrderBy{Field: "updated_at", Desc: true},
		OrderBy{Field: "id"},
	}
}
