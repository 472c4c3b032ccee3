package main

import (
	"context"
	"path/filepath"
	"testing"

	"minddock/internal/bootstrap"
	"minddock/internal/config"
	"minddock/internal/model"
	"minddock/internal/pkg/logger"
	"minddock/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedWorkspaceIsRepeatable(t *testing.T) {
	db, err := database.NewGormDB(database.GormConfig{
		Driver:   database.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "seed.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	cfg := &config.Config{Events: config.EventsConfig{ActivityTopic: "seed"}}
	c, err := bootstrap.NewContainer(db, cfg, logger.NewNopLogger())
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, SeedWorkspace(ctx, c))
	require.NoError(t, SeedWorkspace(ctx, c))

	folders, err := c.WhiteboardFolderService.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Len(t, folders[0].Documents, 1)

	tasks, err := c.TaskService.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	notes, err := c.NoteService.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	logs, err := c.DailyLogService.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
