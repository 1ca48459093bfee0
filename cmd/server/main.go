package main

import (
	"club_system/internal/api"        // Custom package for API handlers
	"club_system/internal/config"     // Custom package for configuration
	"club_system/internal/db"         // Custom package for schema setup
	"club_system/internal/ledger"     // Wallet ledger service
	"club_system/internal/middleware" // Custom package for middleware
	"club_system/internal/store"      // Persistence boundary
	"context"                         // context package is needed for Redis operations
	"log"                             // log package is needed for logging

	"github.com/gin-contrib/cors"  // CORS middleware for Gin
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Create the schema on first run and seed the default admin account
	if err := db.AutoMigrate(gormDB); err != nil {
		logrus.Fatalf("failed to migrate schema: %v", err)
	}
	if err := db.SeedAdmin(gormDB, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logrus.Errorf("failed to seed admin account: %v", err) // Startup continues without the seed admin
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Wire the ledger service over the store boundary
	ledgerSvc := ledger.NewService(store.NewGormStore(gormDB))

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Allow browser clients from any origin
	r.Use(cors.Default())

	// Auth routes
	r.GET("/auth", api.HealthHandler())                                  // Liveness probe
	r.POST("/auth/register", api.RegisterHandler(gormDB, cfg.JWTSecret)) // Registration endpoint
	r.POST("/auth/login", api.LoginHandler(gormDB, cfg.JWTSecret))       // Login endpoint

	// Member routes (protected by JWT)
	memberGroup := r.Group("/members")
	memberGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))             // Protect member routes with JWT middleware
	memberGroup.GET("/:id", api.GetMemberHandler(ledgerSvc, redisClient))    // Get member endpoint
	memberGroup.POST("/:id/topup", api.TopupHandler(ledgerSvc, redisClient)) // Wallet top-up endpoint
	memberGroup.PUT("", api.UpdateMemberHandler(gormDB, redisClient))        // Profile update endpoint

	// Booking routes (protected by JWT)
	bookingGroup := r.Group("/bookings")
	bookingGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	bookingGroup.GET("", api.ListBookingsHandler(gormDB))         // List bookings endpoint
	bookingGroup.POST("", api.CreateBookingHandler(gormDB))       // Create booking endpoint
	bookingGroup.PUT("/:id", api.UpdateBookingHandler(gormDB))    // Update booking endpoint
	bookingGroup.DELETE("/:id", api.DeleteBookingHandler(gormDB)) // Delete booking endpoint

	// Court routes (protected by JWT)
	courtGroup := r.Group("/courts")
	courtGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	courtGroup.GET("", api.ListCourtsHandler(gormDB))         // List courts endpoint
	courtGroup.GET("/:id", api.GetCourtHandler(gormDB))       // Get court endpoint
	courtGroup.POST("", api.CreateCourtHandler(gormDB))       // Create court endpoint
	courtGroup.PUT("/:id", api.UpdateCourtHandler(gormDB))    // Update court endpoint
	courtGroup.DELETE("/:id", api.DeleteCourtHandler(gormDB)) // Delete court endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(gormDB))
	adminGroup.GET("/members", api.ListMembersHandler(gormDB, redisClient))           // List members endpoint
	adminGroup.GET("/transactions", api.ListTransactionsHandler(gormDB, redisClient)) // List transactions endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
