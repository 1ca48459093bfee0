package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Fixed-point money values
)

// WalletTransaction Model — append-only ledger entry, never updated or deleted
type WalletTransaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`              // Primary key
	MemberID    uint            `gorm:"index;not null" json:"memberId"`    // Owning member (weak foreign reference)
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`  // Signed monetary amount
	Type        string          `gorm:"default:''" json:"type"`            // Transaction type: Deposit
	Status      string          `gorm:"default:''" json:"status"`          // Transaction status: Completed
	Description string          `gorm:"default:''" json:"description"`     // Human-readable description
	CreatedDate time.Time       `gorm:"autoCreateTime" json:"createdDate"` // Timestamp of creation
}
