package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Events    EventsConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	ActivityLogPath    string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Driver     string // sqlite or postgres
	Connection string
	LogLevel   string
}

type EventsConfig struct {
	ActivityTopic string
	NatsURL       string // empty disables forwarding
	RedisURL      string // empty keeps the live feed on this instance
	LiveChannel   string
}

type TelemetryConfig struct {
	OtelEnabled    bool
	OtelEndpoint   string
	MetricsEnabled bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/minddock.log"),
			ActivityLogPath:    getEnv("ACTIVITY_LOG_PATH", "logs/activity.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			Connection: getEnv("DB_CONNECTION_STRING", "minddock.db"),
			LogLevel:   getEnv("DB_LOG_LEVEL", "warn"),
		},
		Events: EventsConfig{
			ActivityTopic: getEnv("ACTIVITY_TOPIC", "minddock.activity"),
			NatsURL:       getEnv("NATS_URL", ""),
			RedisURL:      getEnv("REDIS_URL", ""),
			LiveChannel:   getEnv("LIVE_CHANNEL", "minddock:activity"),
		},
		Telemetry: TelemetryConfig{
			OtelEnabled:    getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
