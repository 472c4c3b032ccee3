package specification

import "gorm.io/gorm"

// TaskDueOrder sorts by due date ascending with undated tasks last.
// "IS NULL" sorts false before true on both postgres and sqlite.
type TaskDueOrder struct{}

func (s TaskDueOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("due_date IS NULL").Order("due_date ASC").Order("created_at ASC")
}

// ByStatus keeps tasks in one column of the board. An empty Status matches all.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	if s.Status == "" {
		return db
	}
	return db.Where("status = ?", s.Status)
}
