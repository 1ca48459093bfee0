package main

import (
	"club_system/internal/config" // Custom import path (Config)
	"club_system/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main entry point for migration and seed-admin bootstrap
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Database Source Name (DSN) for MySQL connection
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db.Migrate(dsn)

	// Reopen to seed the default admin account
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.SeedAdmin(gormDB, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logrus.Fatalf("failed to seed admin account: %v", err)
	}
	logrus.Info("Seed admin ready.") // Log successful bootstrap
}
