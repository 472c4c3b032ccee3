package implementation

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"minddock/internal/entity"
	"minddock/internal/model"
	"minddock/internal/repository/contract"
	"minddock/internal/repository/specification"
	"minddock/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewGormDB(database.GormConfig{
		Driver:   database.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "minddock.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func countRows(t *testing.T, db *gorm.DB, m interface{}, id uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Where("id = ?", id).Count(&n).Error)
	return n
}

func TestUpdateDoesNotResurrectDeletedRows(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("task", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTaskRepository(db)
		task := &entity.Task{Id: uuid.New(), Title: "ship", Status: entity.TaskStatusTodo, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repo.Create(ctx, task))
		require.NoError(t, db.Delete(&model.Task{}, "id = ?", task.Id).Error)

		task.Status = entity.TaskStatusDone
		assert.ErrorIs(t, repo.Update(ctx, task), contract.ErrNotFound)
		assert.Zero(t, countRows(t, db, &model.Task{}, task.Id))
	})

	t.Run("note", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewNoteRepository(db)
		note := &entity.Note{Id: uuid.New(), Title: "idea", Content: "idea", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repo.Create(ctx, note))
		require.NoError(t, repo.Delete(ctx, note.Id))

		note.Content = "late edit"
		assert.ErrorIs(t, repo.Update(ctx, note), contract.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, note.Id), contract.ErrNotFound)
		assert.Zero(t, countRows(t, db, &model.Note{}, note.Id))
	})

	t.Run("daily log", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewDailyLogRepository(db)
		day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
		log := &entity.DailyLog{Id: uuid.New(), Date: day, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repo.Create(ctx, log))
		require.NoError(t, db.Delete(&model.DailyLog{}, "id = ?", log.Id).Error)

		log.WorkedOn = "late edit"
		assert.ErrorIs(t, repo.Update(ctx, log), contract.ErrNotFound)
		assert.Zero(t, countRows(t, db, &model.DailyLog{}, log.Id))
	})

	t.Run("whiteboard folder", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewWhiteboardFolderRepository(db)
		folder := &entity.WhiteboardFolder{Id: uuid.New(), Name: "Work", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repo.Create(ctx, folder))
		require.NoError(t, repo.Delete(ctx, folder.Id))

		folder.Name = "Play"
		assert.ErrorIs(t, repo.Update(ctx, folder), contract.ErrNotFound)
		assert.Zero(t, countRows(t, db, &model.WhiteboardFolder{}, folder.Id))
	})

	t.Run("whiteboard document", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewWhiteboardDocumentRepository(db)
		doc := &entity.WhiteboardDocument{Id: uuid.New(), Title: "Sketch", ExcalidrawJson: "{}", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repo.Create(ctx, doc))
		require.NoError(t, repo.Delete(ctx, doc.Id))

		doc.ExcalidrawJson = `{"elements":[]}`
		assert.ErrorIs(t, repo.Update(ctx, doc), contract.ErrNotFound)
		assert.Zero(t, countRows(t, db, &model.WhiteboardDocument{}, doc.Id))
	})
}

func TestWhiteboardDocumentUpdateWritesSelectedColumns(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	folders := NewWhiteboardFolderRepository(db)
	docs := NewWhiteboardDocumentRepository(db)
	now := time.Now().UTC()

	folder := &entity.WhiteboardFolder{Id: uuid.New(), Name: "Ideas", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, folders.Create(ctx, folder))
	doc := &entity.WhiteboardDocument{Id: uuid.New(), Title: "Draft", ExcalidrawJson: "{}", FolderId: &folder.Id, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, docs.Create(ctx, doc))

	doc.Title = "Final"
	doc.ExcalidrawJson = ""
	doc.FolderId = nil
	doc.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, docs.Update(ctx, doc))

	got, err := docs.FindOne(ctx, specification.ByID{ID: doc.Id})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "", got.ExcalidrawJson)
	assert.Nil(t, got.FolderId)
	assert.WithinDuration(t, now, got.CreatedAt, time.Second)
}

func TestTaskUpdateOnlyMovesStatus(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	now := time.Now().UTC()

	task := &entity.Task{Id: uuid.New(), Title: "ship", DueDate: &now, Status: entity.TaskStatusTodo, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, task))

	task.Title = "ignored"
	task.Status = entity.TaskStatusDoing
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.FindOne(ctx, specification.ByID{ID: task.Id})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ship", got.Title)
	assert.Equal(t, entity.TaskStatusDoing, got.Status)
	require.NotNil(t, got.DueDate)
}
