package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"club_system/internal/db"
	"club_system/internal/domain"
	"club_system/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store_test.db")
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("underlying db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gormDB
}

func seedMember(t *testing.T, gormDB *gorm.DB, balance string) uint {
	t.Helper()
	value, err := decimal.NewFromString(balance)
	if err != nil {
		t.Fatalf("parse balance: %v", err)
	}
	member := domain.Member{
		FullName:      "Store Member",
		Email:         "store@example.com",
		Password:      "irrelevant-hash",
		WalletBalance: value,
		JoinDate:      time.Now(),
	}
	if err := gormDB.Create(&member).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}
	return member.ID
}

func TestGetMemberTranslatesNotFound(t *testing.T) {
	gormDB := newTestDB(t)
	s := store.NewGormStore(gormDB)

	if _, err := s.GetMember(context.Background(), 42); !errors.Is(err, store.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestCreditBalanceIsRelative(t *testing.T) {
	gormDB := newTestDB(t)
	s := store.NewGormStore(gormDB)
	memberID := seedMember(t, gormDB, "100.00")

	if err := s.CreditBalance(context.Background(), memberID, decimal.RequireFromString("2.50")); err != nil {
		t.Fatalf("credit: %v", err)
	}
	member, err := s.GetMember(context.Background(), memberID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !member.WalletBalance.Equal(decimal.RequireFromString("102.50")) {
		t.Fatalf("expected 102.50, got %s", member.WalletBalance)
	}
}

func TestCreditBalanceUnknownMember(t *testing.T) {
	gormDB := newTestDB(t)
	s := store.NewGormStore(gormDB)

	err := s.CreditBalance(context.Background(), 42, decimal.RequireFromString("2.50"))
	if !errors.Is(err, store.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestRunAtomicRollsBackAllWrites(t *testing.T) {
	gormDB := newTestDB(t)
	s := store.NewGormStore(gormDB)
	memberID := seedMember(t, gormDB, "0.00")
	boom := errors.New("boom")

	err := s.RunAtomic(context.Background(), func(tx store.Store) error {
		if err := tx.CreditBalance(context.Background(), memberID, decimal.RequireFromString("10.00")); err != nil {
			return err
		}
		entry := &domain.WalletTransaction{MemberID: memberID, Amount: decimal.RequireFromString("10.00"), Type: "Deposit", Status: "Completed", CreatedDate: time.Now()}
		if err := tx.InsertTransaction(context.Background(), entry); err != nil {
			return err
		}
		return boom // Abort after both writes
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	member, err := s.GetMember(context.Background(), memberID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !member.WalletBalance.IsZero() {
		t.Fatalf("expected rolled back balance, got %s", member.WalletBalance)
	}
	var count int64
	if err := gormDB.Model(&domain.WalletTransaction{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected ledger rolled back, got %d rows", count)
	}
}
