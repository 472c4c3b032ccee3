package main

import (
	"log"

	"minddock/internal/config"
	"minddock/internal/model"
	"minddock/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: "info",
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	models := model.All()
	log.Printf("Running AutoMigrate for %d tables on %s...", len(models), cfg.Database.Driver)

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Migration completed!")
}
