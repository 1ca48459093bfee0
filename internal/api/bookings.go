package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"club_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ListBookingsHandler returns all bookings
func ListBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []domain.Booking // Slice to hold bookings
		if err := db.Find(&bookings).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("List bookings failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, bookings) // Return all bookings
	}
}

// CreateBookingHandler creates a new booking
func CreateBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking domain.Booking // Bind JSON request to the model
		if err := c.ShouldBindJSON(&booking); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		booking.ID = 0 // Id is assigned by the store
		if booking.Status == "" {
			booking.Status = "Pending" // New bookings start pending
		}
		if err := db.Create(&booking).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"member_id": booking.MemberID, // Booking member
				"error":     err.Error(),      // Error message
			}).Error("Create booking failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create booking"})
			return
		}
		// Return the created booking with its assigned id
		c.JSON(http.StatusCreated, gin.H{"message": "Booking created", "booking": booking})
	}
}

// UpdateBookingHandler replaces the mutable fields of a booking
func UpdateBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the id from the path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id"})
			return
		}
		var req domain.Booking // Bind JSON request to the model
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		var booking domain.Booking // Fetch existing booking
		if err := db.First(&booking, id).Error; err != nil {
			// If booking not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		// Replace the mutable fields
		if err := db.Model(&booking).Updates(map[string]any{
			"status":      req.Status,     // New status
			"start_time":  req.StartTime,  // New start time
			"end_time":    req.EndTime,    // New end time
			"court_id":    req.CourtID,    // New court
			"total_price": req.TotalPrice, // New price
		}).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"booking_id": id,          // Booking ID
				"error":      err.Error(), // Error message
			}).Error("Update booking failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Update failed"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Update successful", "bookingId": id})
	}
}

// DeleteBookingHandler removes a booking
func DeleteBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32) // Parse the id from the path
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id"})
			return
		}
		var booking domain.Booking // Fetch existing booking
		if err := db.First(&booking, id).Error; err != nil {
			// If booking not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		if err := db.Delete(&booking).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"booking_id": id,          // Booking ID
				"error":      err.Error(), // Error message
			}).Error("Delete booking failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Delete failed"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Delete successful", "bookingId": id})
	}
}
