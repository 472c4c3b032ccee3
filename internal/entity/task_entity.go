package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "Todo"
	TaskStatusDoing TaskStatus = "Doing"
	TaskStatusDone  TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusDoing, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	Id        uuid.UUID
	Title     string
	DueDate   *time.Time
	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
