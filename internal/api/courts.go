package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"club_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ListCourtsHandler returns all courts
func ListCourtsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var courts []domain.Court // Slice to hold courts
		if err := db.Find(&courts).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("List courts failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch courts"})
			return
		}
		c.JSON(http.StatusOK, courts) // Return all courts
	}
}

// GetCourtHandler returns a court by id
func GetCourtHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the id from the path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid court id"})
			return
		}
		var court domain.Court // Court struct to hold data
		if err := db.First(&court, id).Error; err != nil {
			// If court not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"message": "Court not found"})
			return
		}
		c.JSON(http.StatusOK, court) // Return court info
	}
}

// CreateCourtHandler creates a new court
func CreateCourtHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var court domain.Court // Bind JSON request to the model
		if err := c.ShouldBindJSON(&court); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		court.ID = 0 // Id is assigned by the store
		if err := db.Create(&court).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"name":  court.Name,  // Court name
				"error": err.Error(), // Error message
			}).Error("Create court failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create court"})
			return
		}
		// Return the created court with its assigned id
		c.JSON(http.StatusCreated, gin.H{"message": "Court created", "court": court})
	}
}

// UpdateCourtHandler replaces the mutable fields of a court
func UpdateCourtHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the id from the path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid court id"})
			return
		}
		var req domain.Court // Bind JSON request to the model
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		var court domain.Court // Fetch existing court
		if err := db.First(&court, id).Error; err != nil {
			// If court not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"message": "Court not found"})
			return
		}
		// Replace the mutable fields
		if err := db.Model(&court).Updates(map[string]any{
			"name":           req.Name,         // New name
			"description":    req.Description,  // New description
			"is_active":      req.IsActive,     // New active flag
			"price_per_hour": req.PricePerHour, // New hourly rate
		}).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"court_id": id,          // Court ID
				"error":    err.Error(), // Error message
			}).Error("Update court failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Update failed"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Update successful", "courtId": id})
	}
}

// DeleteCourtHandler removes a court
func DeleteCourtHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the id from the path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid court id"})
			return
		}
		var court domain.Court // Fetch existing court
		if err := db.First(&court, id).Error; err != nil {
			// If court not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"message": "Court not found"})
			return
		}
		if err := db.Delete(&court).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"court_id": id,          // Court ID
				"error":    err.Error(), // Error message
			}).Error("Delete court failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Delete failed"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Delete successful", "courtId": id})
	}
}
