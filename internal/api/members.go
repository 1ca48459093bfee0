package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"club_system/internal/domain" // Importing domain models
	"club_system/internal/ledger" // Wallet ledger service
	"club_system/internal/store"  // Persistence boundary errors
	"club_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Fixed-point money values
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// TopupRequest represents a wallet top-up request
type TopupRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"` // Deposit amount
}

// memberIDParam parses the :id path parameter
func memberIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the id from the path
	if err != nil {
		// If the id is not numeric, return bad request
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid member id"})
		return 0, false
	}
	return uint(id), true
}

// GetMemberHandler returns a member record by id
func GetMemberHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := memberIDParam(c) // Parse member id
		if !ok {
			return
		}
		ctx := context.Background()                   // Context for Redis operations
		cacheKey := "member:" + strconv.Itoa(int(id)) // Cache key for the member
		var member domain.Member                      // Member struct to hold data
		if rdb != nil {                               // Cache configured
			found, err := utils.GetCache(ctx, rdb, cacheKey, &member) // Try to get from cache
			// If found in cache, return it
			if err == nil && found {
				c.JSON(http.StatusOK, member)
				return
			}
		}
		// If not in cache, fetch through the ledger service
		m, err := svc.GetMember(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrMemberNotFound) {
				// Return not found if the member doesn't exist
				c.JSON(http.StatusNotFound, gin.H{"message": "Member not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"member_id": id,          // Member ID
				"error":     err.Error(), // Error message
			}).Error("Get member failed") // Log lookup failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch member"})
			return
		}
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, m, 60*time.Second) // Cache the member for 60 seconds
		}
		c.JSON(http.StatusOK, m) // Return member info
	}
}

// TopupHandler credits a member's wallet and records a deposit transaction
func TopupHandler(svc *ledger.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := memberIDParam(c) // Parse member id
		if !ok {
			return
		}
		var req TopupRequest // Bind JSON request to struct
		// Validate request; the endpoint carries deposit semantics, so the
		// amount must be strictly positive
		if err := c.ShouldBindJSON(&req); err != nil || !req.Amount.IsPositive() {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid amount"})
			return
		}
		// Apply the top-up: balance credit + ledger entry as one atomic unit
		result, err := svc.TopUp(c.Request.Context(), id, req.Amount)
		if err != nil {
			if errors.Is(err, store.ErrMemberNotFound) {
				// Unknown member, nothing was written
				c.JSON(http.StatusNotFound, gin.H{"message": "Member not found"})
				return
			}
			// Log the error with context; never echo store internals to the caller
			logrus.WithFields(logrus.Fields{
				"member_id": id,                        // Member ID
				"amount":    req.Amount.StringFixed(2), // Deposit amount
				"error":     err.Error(),               // Error message
			}).Error("Top-up failed") // Log top-up failure
			// Return internal server error with a generic message
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Top-up failed"})
			return
		}
		// Log successful top-up
		logrus.WithFields(logrus.Fields{
			"member_id": id,                              // Member ID
			"amount":    req.Amount.StringFixed(2),       // Deposit amount
			"type":      ledger.TxTypeDeposit,            // Transaction type
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Deposit transaction") // Log deposit success
		// Invalidate member and transaction listing cache
		if rdb != nil {
			ctx := context.Background()                                      // Context for Redis operations
			_ = utils.DeleteCache(ctx, rdb, "member:"+strconv.Itoa(int(id))) // Invalidate member cache
			utils.DeletePages(ctx, rdb, "admin:txs")                         // Invalidate admin transaction listing cache
		}
		// Return success response with the post-update balance
		c.JSON(http.StatusOK, gin.H{
			"message":    "Top-up successful", // Success message
			"memberId":   result.MemberID,     // Member credited
			"newBalance": result.NewBalance,   // Balance after the credit
			"amount":     result.Amount,       // Amount applied
		})
	}
}

// UpdateMemberRequest carries the mutable profile fields
type UpdateMemberRequest struct {
	ID        uint   `json:"id" binding:"required"` // Member to update
	FullName  string `json:"fullName"`              // New display name
	Phone     string `json:"phone"`                 // New contact phone
	AvatarUrl string `json:"avatarUrl"`             // New profile picture URL
}

// UpdateMemberHandler replaces a member's profile fields.
// It never touches WalletBalance and never emits a transaction; balance
// changes flow exclusively through the ledger service.
func UpdateMemberHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateMemberRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		var member domain.Member // Fetch existing member
		if err := db.First(&member, req.ID).Error; err != nil {
			// If member not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"message": "Member not found"})
			return
		}
		// Replace the mutable profile fields only
		if err := db.Model(&member).Updates(map[string]any{
			"full_name":  req.FullName,  // New display name
			"phone":      req.Phone,     // New contact phone
			"avatar_url": req.AvatarUrl, // New profile picture URL
			"updated_at": time.Now(),    // Stamp the update
		}).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"member_id": req.ID,      // Member ID
				"error":     err.Error(), // Error message
			}).Error("Update member failed") // Log update failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Update failed"})
			return
		}
		// Invalidate the member cache
		if rdb != nil {
			_ = utils.DeleteCache(context.Background(), rdb, "member:"+strconv.Itoa(int(req.ID)))
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Update successful", "memberId": req.ID})
	}
}
