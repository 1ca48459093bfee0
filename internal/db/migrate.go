package db

import (
	"time" // Timestamps

	"club_system/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Fixed-point money values
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt" // Password hashing

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(&domain.Member{}, &domain.WalletTransaction{}, &domain.Booking{}, &domain.Court{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// AutoMigrate creates or updates the schema on an already open connection
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Member{}, &domain.WalletTransaction{}, &domain.Booking{}, &domain.Court{})
}

// SeedAdmin creates or resets the default admin account
func SeedAdmin(db *gorm.DB, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost) // Hash the admin password
	if err != nil {
		return err // Return error if hashing fails
	}
	var admin domain.Member // Existing admin account, if any
	err = db.Where("email = ?", email).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		// Create the admin account on first run
		admin = domain.Member{
			FullName:      "Admin",      // Display name
			Email:         email,        // Admin email
			Password:      string(hash), // Hashed password
			WalletBalance: decimal.Zero, // Admin starts with zero balance
			Role:          "Admin",      // Admin role
			Tier:          "Premium",    // Admin tier
			JoinDate:      time.Now(),   // Joined at seed time
		}
		if err := db.Create(&admin).Error; err != nil {
			return err // Return error if creation fails
		}
		logrus.WithField("email", email).Info("Seed admin created") // Log admin creation
		return nil
	} else if err != nil {
		return err // Return any other lookup error
	}
	// Reset the existing admin credentials
	return db.Model(&admin).Updates(map[string]any{
		"full_name": "Admin",      // Reset display name
		"password":  string(hash), // Reset password hash
	}).Error
}
