package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Fixed-point money values
)

// Member Model
type Member struct {
	ID            uint            `gorm:"primaryKey" json:"id"`                              // Primary key
	FullName      string          `gorm:"not null;default:''" json:"fullName"`               // Display name
	Email         string          `gorm:"unique;not null" json:"email"`                      // Unique email, used as login handle
	Password      string          `gorm:"not null" json:"-"`                                 // Bcrypt password hash, never serialized
	WalletBalance decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"walletBalance"` // Wallet balance, mutated only by the ledger service
	Role          string          `gorm:"default:Member" json:"role"`                        // Role: Member or Admin
	Tier          string          `gorm:"default:Standard" json:"tier"`                      // Tier: Standard or Premium
	JoinDate      time.Time       `json:"joinDate"`                                          // Date the member joined
	RankLevel     *float32        `json:"rankLevel,omitempty"`                               // Optional skill ranking
	Status        *bool           `json:"status,omitempty"`                                  // Optional active flag
	Phone         string          `json:"phone"`                                             // Contact phone
	TotalSpent    decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"totalSpent"`    // Lifetime spend
	AvatarUrl     string          `json:"avatarUrl"`                                         // Profile picture URL
	CreatedAt     time.Time       `json:"createdAt"`                                         // Record creation timestamp
	UpdatedAt     time.Time       `json:"updatedAt"`                                         // Last profile update timestamp
}
