package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"minddock/internal/bootstrap"
	"minddock/internal/config"
	"minddock/internal/model"
	"minddock/internal/pkg/logger"
	"minddock/internal/server"
	"minddock/internal/tracer"
	"minddock/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 2. Tracing, off unless OTEL_ENABLED=true
	shutdownTracer := tracer.InitTracer(cfg.Telemetry.OtelEnabled, cfg.Telemetry.OtelEndpoint, sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDB(database.GormConfig{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: cfg.Database.LogLevel,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := gormDB.AutoMigrate(model.All()...); err != nil {
		log.Panicf("Migration failed: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(gormDB, cfg, sysLogger)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Close()

	// 5. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := container.ConsumerService.Consume(ctx); err != nil {
		sysLogger.Error("MAIN", "Activity consumer failed to start", map[string]interface{}{"error": err})
	}
	go container.Hub.Run(ctx)

	// 6. Run Server until a signal arrives
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		sysLogger.Info("MAIN", "Shutting down", nil)
		_ = srv.Shutdown()
	}()

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
