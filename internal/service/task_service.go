package service

import (
	"context"
	"strings"
	"time"

	"minddock/internal/dto"
	"minddock/internal/entity"
	"minddock/internal/pkg/apperror"
	"minddock/internal/pkg/logger"
	"minddock/internal/repository/specification"
	"minddock/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITaskService interface {
	GetAll(ctx context.Context, filter *dto.TaskFilter) ([]*dto.TaskResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error)
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	Update(ctx context.Context, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	activity   activityRecorder
}

func NewTaskService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) ITaskService {
	return &taskService{
		uowFactory: uowFactory,
		logger:     logger,
		activity:   activityRecorder{publisher: publisherService, log: logger},
	}
}

func (s *taskService) GetAll(ctx context.Context, filter *dto.TaskFilter) ([]*dto.TaskResponse, error) {
	var status specification.ByStatus
	if filter != nil && filter.Status != "" {
		if !entity.TaskStatus(filter.Status).Valid() {
			return nil, apperror.Validationf("unknown task status %q", filter.Status)
		}
		status.Status = filter.Status
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tasks, err := uow.TaskRepository().FindAll(ctx, status, specification.TaskDueOrder{})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, toTaskResponse(task))
	}
	return result, nil
}

func (s *taskService) Show(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Create starts every task as Todo and due now.
func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.Validation("title is required")
	}

	now := time.Now().UTC()
	task := entity.Task{
		Id:        uuid.New(),
		Title:     title,
		DueDate:   &now,
		Status:    entity.TaskStatusTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TaskRepository().Create(ctx, &task); err != nil {
		return nil, err
	}

	s.logger.Info("TASK", "Task created", map[string]interface{}{"task_id": task.Id.String()})
	s.activity.record(ctx, EntityTask, ActionCreated, task.Id)

	return toTaskResponse(&task), nil
}

func (s *taskService) Update(ctx context.Context, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	status := entity.TaskStatus(req.Status)
	if !status.Valid() {
		return nil, apperror.Validationf("unknown task status %q", req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	task, err := s.findTask(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	task.Status = status
	task.UpdatedAt = time.Now().UTC()

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, notFoundOnMiss(err, "task not found")
	}

	s.logger.Info("TASK", "Task status changed", map[string]interface{}{
		"task_id": task.Id.String(),
		"status":  string(status),
	})
	s.activity.record(ctx, EntityTask, ActionUpdated, task.Id)

	return toTaskResponse(task), nil
}

func (s *taskService) findTask(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Task, error) {
	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NotFound("task not found")
	}
	return task, nil
}

func toTaskResponse(task *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:        task.Id,
		Title:     task.Title,
		DueDate:   task.DueDate,
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}
