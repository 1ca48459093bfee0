package db_test

import (
	"path/filepath"
	"testing"

	"club_system/internal/db"
	"club_system/internal/domain"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "db_test.db")), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gormDB
}

func TestSeedAdminCreatesAndResets(t *testing.T) {
	gormDB := newTestDB(t)

	if err := db.SeedAdmin(gormDB, "admin@pcm.com", "first-pass"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var admin domain.Member
	if err := gormDB.Where("email = ?", "admin@pcm.com").First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if admin.Role != "Admin" || admin.Tier != "Premium" {
		t.Fatalf("unexpected admin account: role=%q tier=%q", admin.Role, admin.Tier)
	}
	if !admin.WalletBalance.IsZero() {
		t.Fatalf("admin should start with zero balance, got %s", admin.WalletBalance)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("first-pass")); err != nil {
		t.Fatalf("seed password does not verify: %v", err)
	}

	// Re-seeding resets the credentials instead of duplicating the account
	if err := db.SeedAdmin(gormDB, "admin@pcm.com", "second-pass"); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	var count int64
	if err := gormDB.Model(&domain.Member{}).Count(&count).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single admin account, got %d members", count)
	}
	if err := gormDB.Where("email = ?", "admin@pcm.com").First(&admin).Error; err != nil {
		t.Fatalf("reload admin: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("second-pass")); err != nil {
		t.Fatalf("reset password does not verify: %v", err)
	}
}
