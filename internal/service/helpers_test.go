package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"minddock/internal/model"
	"minddock/internal/pkg/logger"
	"minddock/internal/repository/unitofwork"
	"minddock/pkg/database"

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

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	return unitofwork.NewRepositoryFactory(newTestDB(t))
}

// recordingPublisher keeps every published payload in memory.
type recordingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *recordingPublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

var nopLogger = logger.NewNopLogger()

func strPtr(s string) *string { return &s }
