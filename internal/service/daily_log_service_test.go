package service

import (
	"context"
	"testing"
	"time"

	"minddock/internal/dto"
	"minddock/internal/entity"
	"minddock/internal/pkg/apperror"
	"minddock/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDailyLogRequest(date, workedOn string) *dto.CreateDailyLogRequest {
	return &dto.CreateDailyLogRequest{
		Date:          date,
		WorkedOn:      strPtr(workedOn),
		Blockers:      strPtr("none"),
		Learned:       strPtr("gorm scopes"),
		TomorrowFocus: strPtr("tests"),
	}
}

func TestDailyLogService_CreateAndShow(t *testing.T) {
	svc := NewDailyLogService(newTestFactory(t), nil, nopLogger)
	ctx := context.Background()

	res, err := svc.Create(ctx, newDailyLogRequest("2026-02-01", "X"))
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", res.Date)
	assert.Equal(t, "X", res.WorkedOn)

	got, err := svc.ShowByDate(ctx, "2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, res.Id, got.Id)
	assert.Equal(t, "tests", got.TomorrowFocus)
}

func TestDailyLogService_CreateConflictLeavesOriginal(t *testing.T) {
	svc := NewDailyLogService(newTestFactory(t), nil, nopLogger)
	ctx := context.Background()

	original, err := svc.Create(ctx, newDailyLogRequest("2026-02-01", "original"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, newDailyLogRequest("2026-02-01", "intruder"))
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.Equal(t, ErrMsgDailyLogExists, err.Error())

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, original.Id, all[0].Id)
	assert.Equal(t, "original", all[0].WorkedOn)
}

func TestDailyLogRepository_UniqueDateIndex(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()
	repo := factory.NewUnitOfWork(ctx).DailyLogRepository()

	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, &entity.DailyLog{Id: uuid.New(), Date: day, CreatedAt: now, UpdatedAt: now}))
	err := repo.Create(ctx, &entity.DailyLog{Id: uuid.New(), Date: day, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, contract.ErrDuplicateKey)
}

func TestDailyLogService_ValidationAndNotFound(t *testing.T) {
	svc := NewDailyLogService(newTestFactory(t), nil, nopLogger)
	ctx := context.Background()

	_, err := svc.ShowByDate(ctx, "2026-13-01")
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.ShowByDate(ctx, "01/02/2026")
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.ShowByDate(ctx, "2026-02-02")
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Create(ctx, newDailyLogRequest("yesterday", "x"))
	assert.True(t, apperror.IsValidation(err))

	req := newDailyLogRequest("2026-02-03", "x")
	req.Learned = nil
	_, err = svc.Create(ctx, req)
	assert.True(t, apperror.IsValidation(err))
}

func TestDailyLogService_Update(t *testing.T) {
	svc := NewDailyLogService(newTestFactory(t), nil, nopLogger)
	ctx := context.Background()

	created, err := svc.Create(ctx, newDailyLogRequest("2026-02-01", "draft"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &dto.UpdateDailyLogRequest{
		Id:            created.Id,
		WorkedOn:      strPtr("final"),
		Blockers:      strPtr(""),
		Learned:       strPtr("more"),
		TomorrowFocus: strPtr("rest"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", updated.Date)
	assert.Equal(t, "final", updated.WorkedOn)
	assert.Equal(t, "", updated.Blockers)

	got, err := svc.ShowByDate(ctx, "2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, "final", got.WorkedOn)
	assert.Equal(t, created.CreatedAt.Unix(), got.CreatedAt.Unix())

	_, err = svc.Update(ctx, &dto.UpdateDailyLogRequest{
		Id:            uuid.New(),
		WorkedOn:      strPtr("a"),
		Blockers:      strPtr("b"),
		Learned:       strPtr("c"),
		TomorrowFocus: strPtr("d"),
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDailyLogService_GetAllNewestDayFirst(t *testing.T) {
	svc := NewDailyLogService(newTestFactory(t), nil, nopLogger)
	ctx := context.Background()

	for _, d := range []string{"2026-01-15", "2026-02-01", "2025-12-31"} {
		_, err := svc.Create(ctx, newDailyLogRequest(d, d))
		require.NoError(t, err)
	}

	logs, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, []string{"2026-02-01", "2026-01-15", "2025-12-31"}, []string{logs[0].Date, logs[1].Date, logs[2].Date})
}
