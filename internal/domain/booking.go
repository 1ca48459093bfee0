package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Fixed-point money values
)

// Booking Model
type Booking struct {
	ID              uint             `gorm:"primaryKey" json:"id"`                           // Primary key
	MemberID        uint             `gorm:"index" json:"memberId"`                          // Member who booked
	CourtID         *uint            `json:"courtId,omitempty"`                              // Booked court
	StartTime       time.Time        `json:"startTime"`                                      // Booking start
	EndTime         time.Time        `json:"endTime"`                                        // Booking end
	Status          string           `gorm:"default:Pending" json:"status"`                  // Status: Pending, Confirmed, Cancelled
	TotalPrice      *decimal.Decimal `gorm:"type:decimal(18,2)" json:"totalPrice,omitempty"` // Price of the booking
	TransactionID   *uint            `json:"transactionId,omitempty"`                        // Ledger reference, not yet wired to the wallet
	IsRecurring     *bool            `json:"isRecurring,omitempty"`                          // Recurring booking flag
	RecurrenceRule  string           `json:"recurrenceRule"`                                 // Recurrence rule for recurring bookings
	ParentBookingID *uint            `json:"parentBookingId,omitempty"`                      // Parent booking for recurrences
	HoldUntil       *time.Time       `json:"holdUntil,omitempty"`                            // Pending hold expiry
	CreatedAt       time.Time        `json:"createdAt"`                                      // Record creation timestamp
}
