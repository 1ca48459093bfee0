package ledger

import (
	"context" // Context for store operations
	"fmt"     // Description formatting
	"time"    // Timestamps

	"club_system/internal/domain" // Importing domain models
	"club_system/internal/store"  // Persistence boundary

	"github.com/shopspring/decimal" // Fixed-point money values
)

// Ledger entry constants
const (
	TxTypeDeposit     = "Deposit"   // Transaction type for top-ups
	TxStatusCompleted = "Completed" // Transaction status for applied entries
)

// Service maintains each member's wallet balance and its audit trail.
// All balance mutations flow through TopUp; profile updates never touch
// the balance and never emit a transaction.
type Service struct {
	store store.Store // Explicit store handle, no ambient globals
}

// NewService wires a ledger Service over a Store
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// TopUpResult is returned by a successful top-up
type TopUpResult struct {
	MemberID   uint            `json:"memberId"`   // Member credited
	Amount     decimal.Decimal `json:"amount"`     // Amount applied
	NewBalance decimal.Decimal `json:"newBalance"` // Balance after the credit
}

// TopUp credits amount to the member's wallet and appends a Deposit
// transaction. Both writes happen inside one RunAtomic boundary: a failure
// anywhere rolls back the balance change and the ledger entry together.
// Returns store.ErrMemberNotFound without side effects if the member id
// does not exist.
func (s *Service) TopUp(ctx context.Context, memberID uint, amount decimal.Decimal) (TopUpResult, error) {
	var result TopUpResult // Result populated inside the transaction
	err := s.store.RunAtomic(ctx, func(tx store.Store) error {
		// Verify the member exists before mutating anything
		if _, err := tx.GetMember(ctx, memberID); err != nil {
			return err // NotFound or DB error, nothing written yet
		}
		// Increment the wallet balance (relative update, serialized per row)
		if err := tx.CreditBalance(ctx, memberID, amount); err != nil {
			return err // Roll back on failure
		}
		// Append the ledger entry for this credit
		entry := &domain.WalletTransaction{
			MemberID:    memberID,                                                // Owning member
			Amount:      amount,                                                  // Credited amount
			Type:        TxTypeDeposit,                                           // Deposit entry
			Status:      TxStatusCompleted,                                       // Applied immediately
			Description: fmt.Sprintf("Wallet top-up: %s", amount.StringFixed(2)), // Human-readable description
			CreatedDate: time.Now(),                                              // Timestamp of the credit
		}
		if err := tx.InsertTransaction(ctx, entry); err != nil {
			return err // Roll back the balance change too
		}
		// Re-read the member for the post-update balance
		member, err := tx.GetMember(ctx, memberID)
		if err != nil {
			return err
		}
		result = TopUpResult{
			MemberID:   memberID,             // Member credited
			Amount:     amount,               // Amount applied
			NewBalance: member.WalletBalance, // Resulting balance
		}
		return nil // Commit both writes
	})
	if err != nil {
		return TopUpResult{}, err // Surface the failure, no partial state
	}
	return result, nil
}

// GetMember is a pure lookup used to expose the current balance.
// It performs no writes; store.ErrMemberNotFound if the id does not exist.
func (s *Service) GetMember(ctx context.Context, memberID uint) (*domain.Member, error) {
	return s.store.GetMember(ctx, memberID)
}
