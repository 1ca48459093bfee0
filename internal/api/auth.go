package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Timestamps

	"club_system/internal/domain" // Importing domain models
	"club_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Fixed-point money values
	"github.com/sirupsen/logrus"    // Logging library
	"golang.org/x/crypto/bcrypt"    // Password hashing
	"gorm.io/gorm"                  // GORM ORM library
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`    // Display name must be provided
	Email    string `json:"email" binding:"required,email"` // Email must be provided and valid
	Password string `json:"password" binding:"required"`    // Password must be provided
	Phone    string `json:"phone"`                          // Optional contact phone
}

// LoginRequest represents a login request; username matches email or full name
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Email or full name
	Password string `json:"password" binding:"required"` // Password must be provided
}

// isValidPassword checks if the password length is between 6 and 72 characters
func isValidPassword(password string) bool {
	return len(password) >= 6 && len(password) <= 72 // 72 is the bcrypt input limit
}

// memberPayload maps a member to the auth response body
func memberPayload(m *domain.Member) gin.H {
	return gin.H{
		"id":            m.ID,            // Member ID
		"email":         m.Email,         // Email
		"fullName":      m.FullName,      // Display name
		"phone":         m.Phone,         // Contact phone
		"avatarUrl":     m.AvatarUrl,     // Profile picture URL
		"role":          m.Role,          // Role
		"walletBalance": m.WalletBalance, // Current wallet balance
		"tier":          m.Tier,          // Tier
		"joinDate":      m.JoinDate,      // Join date
	}
}

// RegisterHandler creates a new member account and returns a signed token
func RegisterHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			// If password is invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be 6-72 characters"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email)) // Normalize email for uniqueness
		// Check whether the email is already registered
		var count int64
		if err := db.Model(&domain.Member{}).Where("email = ?", email).Count(&count).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"email": email,       // Email being registered
				"error": err.Error(), // Error message
			}).Error("Register lookup failed") // Log lookup failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
			return
		}
		if count > 0 {
			// Duplicate email, no mutation performed
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
			return
		}
		// Hash the password and create the member
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
			return
		}
		member := domain.Member{
			FullName:      req.FullName, // Display name
			Email:         email,        // Login handle
			Password:      string(hash), // Hashed password
			Phone:         req.Phone,    // Contact phone
			Role:          "Member",     // New accounts are plain members
			Tier:          "Standard",   // New accounts start on the standard tier
			WalletBalance: decimal.Zero, // Fresh wallet
			JoinDate:      time.Now(),   // Joined now
		}
		// Attempt to create the member in the database
		if err := db.Create(&member).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"email": email,       // Email being registered
				"error": err.Error(), // Error message
			}).Error("Register failed") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
			return
		}
		// Issue a signed token for the new member
		token, err := utils.GenerateJWT(member.ID, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
			return
		}
		// Return the token and the created member
		c.JSON(http.StatusOK, gin.H{"token": token, "user": memberPayload(&member)})
	}
}

// LoginHandler authenticates a member and returns a signed token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		var member domain.Member // Fetch member from database
		// Username matches either the email or the full name
		if err := db.Where("email = ? OR full_name = ?", strings.ToLower(req.Username), req.Username).First(&member).Error; err != nil {
			// If member not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(member.ID, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
			return
		}
		// Return the token and member info in the response
		c.JSON(http.StatusOK, gin.H{"token": token, "user": memberPayload(&member)})
	}
}

// HealthHandler reports API liveness
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is working!", "timestamp": time.Now()})
	}
}
