package main

import (
	"context"
	"log"

	"minddock/internal/bootstrap"
	"minddock/internal/config"
	"minddock/internal/model"
	"minddock/internal/pkg/logger"
	"minddock/pkg/database"
)

func main() {
	cfg := config.Load()
	cfg.Telemetry.MetricsEnabled = false
	cfg.Events.NatsURL = ""

	db, err := database.NewGormDB(database.GormConfig{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: cfg.Database.LogLevel,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	defer sysLogger.Sync()

	container, err := bootstrap.NewContainer(db, cfg, sysLogger)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer container.Close()

	log.Println("Seeding demo workspace...")
	if err := SeedWorkspace(context.Background(), container); err != nil {
		log.Fatalf("Error: seeding failed: %v", err)
	}
	log.Println("Workspace seeding completed!")
}
