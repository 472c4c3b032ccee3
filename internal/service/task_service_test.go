package service

import (
	"context"
	"testing"
	"time"

	"minddock/internal/dto"
	"minddock/internal/entity"
	"minddock/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Create(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewTaskService(newTestFactory(t), pub, nopLogger)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	res, err := svc.Create(ctx, &dto.CreateTaskRequest{Title: "  Fix login bug "})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.Equal(t, "Fix login bug", res.Title)
	assert.Equal(t, "Todo", res.Status)
	require.NotNil(t, res.DueDate)
	assert.True(t, res.DueDate.After(before))
	assert.Equal(t, 1, pub.count())

	got, err := svc.Show(ctx, res.Id)
	require.NoError(t, err)
	assert.Equal(t, res.Title, got.Title)
}

func TestTaskService_CreateRejectsBlankTitle(t *testing.T) {
	svc := NewTaskService(newTestFactory(t), nil, nopLogger)

	_, err := svc.Create(context.Background(), &dto.CreateTaskRequest{Title: "   "})
	assert.True(t, apperror.IsValidation(err))
}

func TestTaskService_Update(t *testing.T) {
	svc := NewTaskService(newTestFactory(t), nil, nopLogger)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateTaskRequest{Title: "ship it"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     dto.UpdateTaskRequest
		check   func(t *testing.T, err error)
		wantOut string
	}{
		{
			name:    "any to any",
			req:     dto.UpdateTaskRequest{Id: created.Id, Status: "Done"},
			wantOut: "Done",
		},
		{
			name:    "back to doing",
			req:     dto.UpdateTaskRequest{Id: created.Id, Status: "Doing"},
			wantOut: "Doing",
		},
		{
			name: "unknown status",
			req:  dto.UpdateTaskRequest{Id: created.Id, Status: "Blocked"},
			check: func(t *testing.T, err error) {
				assert.True(t, apperror.IsValidation(err))
			},
		},
		{
			name: "missing task",
			req:  dto.UpdateTaskRequest{Id: uuid.New(), Status: "Done"},
			check: func(t *testing.T, err error) {
				assert.True(t, apperror.IsNotFound(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			res, err := svc.Update(ctx, &req)
			if tt.check != nil {
				tt.check(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, res.Status)
			assert.False(t, res.UpdatedAt.Before(res.CreatedAt))
		})
	}
}

func TestTaskService_GetAllOrdersByDueDateNullsLast(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewTaskService(factory, nil, nopLogger)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	due := func(d int) *time.Time {
		v := base.AddDate(0, 0, d)
		return &v
	}

	seed := []*entity.Task{
		{Id: uuid.New(), Title: "no due", Status: entity.TaskStatusTodo, CreatedAt: base, UpdatedAt: base},
		{Id: uuid.New(), Title: "later", DueDate: due(3), Status: entity.TaskStatusTodo, CreatedAt: base, UpdatedAt: base},
		{Id: uuid.New(), Title: "sooner", DueDate: due(1), Status: entity.TaskStatusDoing, CreatedAt: base, UpdatedAt: base},
	}
	uow := factory.NewUnitOfWork(ctx)
	for _, task := range seed {
		require.NoError(t, uow.TaskRepository().Create(ctx, task))
	}

	tasks, err := svc.GetAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, "sooner", tasks[0].Title)
	assert.Equal(t, "later", tasks[1].Title)
	assert.Equal(t, "no due", tasks[2].Title)
	assert.Nil(t, tasks[2].DueDate)

	todo, err := svc.GetAll(ctx, &dto.TaskFilter{Status: "Todo"})
	require.NoError(t, err)
	require.Len(t, todo, 2)
	assert.Equal(t, "later", todo[0].Title)
	assert.Equal(t, "no due", todo[1].Title)

	done, err := svc.GetAll(ctx, &dto.TaskFilter{Status: "Done"})
	require.NoError(t, err)
	assert.Empty(t, done)
	assert.NotNil(t, done)

	_, err = svc.GetAll(ctx, &dto.TaskFilter{Status: "Blocked"})
	assert.True(t, apperror.IsValidation(err))
}

func TestTaskService_ShowNotFound(t *testing.T) {
	svc := NewTaskService(newTestFactory(t), nil, nopLogger)

	_, err := svc.Show(context.Background(), uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
