package store

import (
	"context" // Context for DB operations
	"errors"  // Sentinel errors

	"club_system/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Fixed-point money values
	"gorm.io/gorm"                  // GORM ORM library
)

// ErrMemberNotFound is returned when a member id does not exist
var ErrMemberNotFound = errors.New("member not found")

// Store is the persistence boundary of the ledger service.
// RunAtomic executes fn inside a single transaction: every write made
// through the Store it passes in is committed or rolled back as one unit.
type Store interface {
	GetMember(ctx context.Context, id uint) (*domain.Member, error)                     // Lookup by id
	CreditBalance(ctx context.Context, id uint, amount decimal.Decimal) error           // Relative balance update
	InsertTransaction(ctx context.Context, transaction *domain.WalletTransaction) error // Append a ledger entry
	RunAtomic(ctx context.Context, fn func(Store) error) error                          // Transaction boundary
}

// GormStore implements Store using GORM
type GormStore struct {
	db *gorm.DB // Database handle (or open transaction inside RunAtomic)
}

// NewGormStore returns a Store backed by a gorm.DB
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// GetMember fetches a member by primary key
func (s *GormStore) GetMember(ctx context.Context, id uint) (*domain.Member, error) {
	var member domain.Member // Member struct to hold data
	if err := s.db.WithContext(ctx).First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound // Translate GORM's not-found error
		}
		return nil, err // Any other DB error
	}
	return &member, nil
}

// CreditBalance increments a member's wallet balance by amount.
// The increment is relative (wallet_balance + ?) so the row update is
// serialized by the database and concurrent credits never lose updates.
func (s *GormStore) CreditBalance(ctx context.Context, id uint, amount decimal.Decimal) error {
	result := s.db.WithContext(ctx).
		Model(&domain.Member{}).
		Where("id = ?", id).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
	if result.Error != nil {
		return result.Error // Return DB error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound // No such member row
	}
	return nil
}

// InsertTransaction appends a ledger entry; entries are never mutated afterwards
func (s *GormStore) InsertTransaction(ctx context.Context, transaction *domain.WalletTransaction) error {
	return s.db.WithContext(ctx).Create(transaction).Error
}

// RunAtomic executes fn within a database transaction
func (s *GormStore) RunAtomic(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx}) // Hand fn a Store bound to the open transaction
	})
}
