package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "DB_CONNECTION_STRING", "NATS_URL", "REDIS_URL", "METRICS_ENABLED", "OTEL_ENABLED", "GO_ENV"} {
		t.Setenv(key, "") // restores the original value after the test
		os.Unsetenv(key)
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "minddock.db", cfg.Database.Connection)
	assert.Equal(t, "", cfg.Events.NatsURL)
	assert.Equal(t, "", cfg.Events.RedisURL)
	assert.Equal(t, "minddock:activity", cfg.Events.LiveChannel)
	assert.True(t, cfg.Telemetry.MetricsEnabled)
	assert.False(t, cfg.Telemetry.OtelEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestUnparsableBoolFallsBack(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "sometimes")
	assert.True(t, Load().Telemetry.MetricsEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost/minddock")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("GO_ENV", "production")

	cfg := Load()
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/minddock", cfg.Database.Connection)
	assert.False(t, cfg.Telemetry.MetricsEnabled)
	assert.True(t, cfg.Telemetry.OtelEnabled)
	assert.True(t, cfg.IsProduction())
}

func TestGetEnvFallback(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("MINDDOCK_TEST_SURELY_UNSET", "fallback"))
}
