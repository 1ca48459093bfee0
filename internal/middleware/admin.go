package middleware

import (
	"club_system/internal/domain" // Importing domain models
	"net/http"                    // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// AdminOnlyMiddleware checks the member's role from the database on each request
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, exists := c.Get("memberID") // Get memberID from context
		// Check if memberID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		var member domain.Member // Fetch member from database
		if err := db.First(&member, memberID).Error; err != nil {
			// If member not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		// Check if member role is Admin
		if member.Role != "Admin" {
			// If not Admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
