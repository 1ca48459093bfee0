package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"club_system/internal/domain" // Importing domain models
	"club_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// pageParams reads page/page_size query parameters with bounds applied
func pageParams(c *gin.Context) (int, int) {
	page := 1      // Default page number
	pageSize := 20 // Default page size
	if p := c.Query("page"); p != "" {
		// Convert page to integer
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	// Check and set page size within limits
	if ps := c.Query("page_size"); ps != "" {
		// If valid, set page size
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v // Set page size
		}
	}
	return page, pageSize
}

// ListMembersHandler returns all members with pagination (admin only)
func ListMembersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		page, pageSize := pageParams(c)
		// Create a cache key based on pagination parameters
		cacheKey := "admin:members:page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
		// Try to get cached response
		var cached struct {
			Members    []domain.Member `json:"members"`     // List of members
			Page       int             `json:"page"`        // Current page
			PageSize   int             `json:"page_size"`   // Page size
			Total      int64           `json:"total"`       // Total number of members
			TotalPages int             `json:"total_pages"` // Total pages
		}
		if rdb != nil {
			// If cached data found, return it
			found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
			if err == nil && found {
				c.JSON(http.StatusOK, gin.H{
					"members":     cached.Members,    // List of members
					"page":        cached.Page,       // Current page
					"page_size":   cached.PageSize,   // Page size
					"total":       cached.Total,      // Total number of members
					"total_pages": cached.TotalPages, // Total pages
					"cached":      true,              // Indicate response is from cache
				})
				return
			}
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		var total int64                 // Total member count
		// Fetch total member count
		if err := db.Model(&domain.Member{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count members"}) // Return on error
			return
		}
		var members []domain.Member // Slice to hold members
		// Apply offset and limit for pagination
		if err := db.Offset(offset).Limit(pageSize).Find(&members).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch members"}) // Return on error
			return
		}
		// The total number of pages
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		// Prepare final response data
		respData := gin.H{
			"members":     members,    // List of members (password hash is never serialized)
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total number of members
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Indicate response is not from cache
		}
		if rdb != nil {
			// Cache the response for future requests
			_ = utils.SetCache(ctx, rdb, cacheKey, respData, 60*time.Second)
		}
		c.JSON(http.StatusOK, respData) // Return the response
	}
}

// ListTransactionsHandler returns all wallet transactions, with optional
// filtering by member, type, or date (admin only)
func ListTransactionsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		page, pageSize := pageParams(c)
		// Build cache key from the filters plus pagination
		cacheKey := "admin:txs"
		for _, k := range []string{"member_id", "type", "from", "to"} {
			if v := c.Query(k); v != "" {
				cacheKey += ":" + k + ":" + v // Append each active filter
			}
		}
		cacheKey += ":page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
		var cached struct {
			Transactions []domain.WalletTransaction `json:"transactions"` // List of transactions
			Page         int                        `json:"page"`         // Current page
			PageSize     int                        `json:"page_size"`    // Page size
			Total        int64                      `json:"total"`        // Total number of transactions
			TotalPages   int                        `json:"total_pages"`  // Total pages
		}
		if rdb != nil {
			// If cached data found, return it
			found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
			if err == nil && found {
				c.JSON(http.StatusOK, gin.H{
					"transactions": cached.Transactions, // List of transactions
					"page":         cached.Page,         // Current page
					"page_size":    cached.PageSize,     // Page size
					"total":        cached.Total,        // Total number of transactions
					"total_pages":  cached.TotalPages,   // Total pages
					"cached":       true,                // Indicate response is from cache
				})
				return
			}
		}
		offset := (page - 1) * pageSize                // Calculate offset for pagination
		query := db.Model(&domain.WalletTransaction{}) // Start building the query
		if memberID := c.Query("member_id"); memberID != "" {
			query = query.Where("member_id = ?", memberID) // Filter by member ID
		}
		if txType := c.Query("type"); txType != "" {
			query = query.Where("type = ?", txType) // Filter by transaction type
		}
		if from := c.Query("from"); from != "" {
			query = query.Where("created_date >= ?", from) // Filter by start date
		}
		if to := c.Query("to"); to != "" {
			query = query.Where("created_date <= ?", to) // Filter by end date
		}
		var total int64 // Total transaction count
		// Get total count of transactions matching the filters
		if err := query.Count(&total).Error; err != nil {
			// If error occurs, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count transactions"})
			return
		}
		var txs []domain.WalletTransaction // Slice to hold transactions
		// Fetch paginated transactions with filters applied
		if err := query.Order("created_date desc").Offset(offset).Limit(pageSize).Find(&txs).Error; err != nil {
			// If error occurs, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch transactions"})
			return
		}
		// The total number of pages
		totalPages := (int(total) + pageSize - 1) / pageSize
		respData := gin.H{
			"transactions": txs,        // List of transactions
			"page":         page,       // Current page
			"page_size":    pageSize,   // Page size
			"total":        total,      // Total number of transactions
			"total_pages":  totalPages, // Total pages
			"cached":       false,      // Indicate response is not from cache
		}
		if rdb != nil {
			// Cache the response for future requests
			_ = utils.SetCache(ctx, rdb, cacheKey, respData, 60*time.Second)
		}
		c.JSON(http.StatusOK, respData) // Return the response
	}
}
