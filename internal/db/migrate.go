package db

import (
	"pantry_chef/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/sqlite" // Sqlite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
)

// Open opens the sqlite database at the given path
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// Migrate performs automatic migration for the database schema.
// It is idempotent: existing tables are left as they are.
func Migrate(path string) {
	db, err := Open(path) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(&domain.User{}, &domain.PantryItem{}, &domain.Favorite{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
