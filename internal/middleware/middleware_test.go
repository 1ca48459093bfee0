package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"club_system/internal/db"
	"club_system/internal/domain"
	"club_system/internal/middleware"
	"club_system/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "middleware-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "mw_test.db")), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gormDB
}

func createMember(t *testing.T, gormDB *gorm.DB, role string) uint {
	t.Helper()
	member := domain.Member{
		FullName:      "Middleware Member",
		Email:         role + "@example.com",
		Password:      "irrelevant-hash",
		WalletBalance: decimal.Zero,
		Role:          role,
		JoinDate:      time.Now(),
	}
	if err := gormDB.Create(&member).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}
	return member.ID
}

func request(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.JWTAuthMiddleware(testSecret), func(c *gin.Context) {
		memberID, _ := c.Get("memberID")
		c.JSON(http.StatusOK, gin.H{"memberId": memberID})
	})

	// Missing header is rejected
	if w := request(t, r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	// Garbage token is rejected
	if w := request(t, r, "not-a-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}
	// Token signed with another secret is rejected
	foreign, err := utils.GenerateJWT(7, "other-secret")
	if err != nil {
		t.Fatalf("sign foreign token: %v", err)
	}
	if w := request(t, r, foreign); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for foreign token, got %d", w.Code)
	}
	// Valid token passes through with the member id in context
	token, err := utils.GenerateJWT(7, testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if w := request(t, r, token); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid token, got %d", w.Code)
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gormDB := newTestDB(t)
	adminID := createMember(t, gormDB, "Admin")
	memberID := createMember(t, gormDB, "Member")

	r := gin.New()
	r.GET("/protected", middleware.JWTAuthMiddleware(testSecret), middleware.AdminOnlyMiddleware(gormDB), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	adminToken, err := utils.GenerateJWT(adminID, testSecret)
	if err != nil {
		t.Fatalf("sign admin token: %v", err)
	}
	if w := request(t, r, adminToken); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}

	memberToken, err := utils.GenerateJWT(memberID, testSecret)
	if err != nil {
		t.Fatalf("sign member token: %v", err)
	}
	if w := request(t, r, memberToken); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for plain member, got %d", w.Code)
	}
}
