package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type GormConfig struct {
	Driver   string // postgres or sqlite
	DSN      string
	LogLevel string // silent, error, warn, info
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func getLogger(level string) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)
}

func configureConnectionPool(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if driver == DriverSQLite {
		// one writer at a time; busy_timeout covers the rest
		sqlDB.SetMaxOpenConns(1)
		return nil
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

func NewGormDB(cfg GormConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("postgres requires a connection string")
		}
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite, "":
		dsn, err := prepareSQLiteDSN(cfg.DSN)
		if err != nil {
			return nil, err
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         getLogger(cfg.LogLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if err := configureConnectionPool(db, cfg.Driver); err != nil {
		return nil, err
	}

	return db, nil
}

// NewGormDBFromDSN keeps the postgres-only entrypoint used by tooling.
func NewGormDBFromDSN(dsn string) (*gorm.DB, error) {
	return NewGormDB(GormConfig{Driver: DriverPostgres, DSN: dsn})
}

// prepareSQLiteDSN creates the parent directory of a file database and turns
// on foreign keys and a busy timeout.
func prepareSQLiteDSN(dsn string) (string, error) {
	if dsn == "" {
		dsn = "minddock.db"
	}

	if !strings.Contains(dsn, ":memory:") && !strings.Contains(dsn, "mode=memory") {
		clean := strings.TrimPrefix(dsn, "file:")
		clean = strings.Split(clean, "?")[0]
		if dir := filepath.Dir(clean); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("create db dir %q: %w", dir, err)
			}
		}
	}

	params := []string{}
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(dsn, "_busy_timeout") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return dsn, nil
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&"), nil
}
