package main

import (
	"pantry_chef/internal/config" // Custom import path (Config)
	"pantry_chef/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DBPath) // Create the sqlite schema if absent
}
