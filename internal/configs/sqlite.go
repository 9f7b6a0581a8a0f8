package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/internal/models"
)

// NewDatabaseClient opens the SQLite file at dsn and ensures the tasks
// table exists. Schema creation is idempotent; there are no migrations
// beyond it.
func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
