package mapper

import (
	"minddock/internal/entity"
	"minddock/internal/model"
)

type TaskMapper struct{}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

func (m *TaskMapper) ToEntity(t *model.Task) *entity.Task {
	if t == nil {
		return nil
	}
	return &entity.Task{
		Id:        t.Id,
		Title:     t.Title,
		DueDate:   t.DueDate,
		Status:    entity.TaskStatus(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TaskMapper) ToModel(t *entity.Task) *model.Task {
	if t == nil {
		return nil
	}
	return &model.Task{
		Id:        t.Id,
		Title:     t.Title,
		DueDate:   t.DueDate,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TaskMapper) ToEntities(tasks []*model.Task) []*entity.Task {
	entities := make([]*entity.Task, len(tasks))
	for i, t := range tasks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
