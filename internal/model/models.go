package model

// All returns every table in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Task{},
		&Note{},
		&DailyLog{},
		&WhiteboardFolder{},
		&WhiteboardDocument{},
	}
}
