package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Fixed-point money values
)

// Court Model
type Court struct {
	ID           uint            `gorm:"primaryKey" json:"id"`                   // Primary key
	Name         string          `gorm:"not null;default:''" json:"name"`        // Court name
	Description  string          `gorm:"default:''" json:"description"`          // Court description
	IsActive     *bool           `json:"isActive,omitempty"`                     // Whether the court is bookable
	PricePerHour decimal.Decimal `gorm:"type:decimal(18,2)" json:"pricePerHour"` // Hourly rate
	CreatedAt    time.Time       `json:"createdAt"`                              // Record creation timestamp
}
