package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title string `json:"title" validate:"required"`
}

type UpdateTaskRequest struct {
	Id     uuid.UUID `json:"-"`
	Status string    `json:"status" validate:"required,oneof=Todo Doing Done"`
}

// TaskFilter narrows the task list. The zero value lists every task.
type TaskFilter struct {
	Status string `query:"status" validate:"omitempty,oneof=Todo Doing Done"`
}

type TaskResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"dueDate"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
