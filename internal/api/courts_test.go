package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"club_system/internal/api"
	"club_system/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCourtRouter(gormDB *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/courts", api.ListCourtsHandler(gormDB))
	r.GET("/courts/:id", api.GetCourtHandler(gormDB))
	r.POST("/courts", api.CreateCourtHandler(gormDB))
	r.PUT("/courts/:id", api.UpdateCourtHandler(gormDB))
	r.DELETE("/courts/:id", api.DeleteCourtHandler(gormDB))
	return r
}

func TestCourtLifecycle(t *testing.T) {
	gormDB := newTestDB(t)
	r := newCourtRouter(gormDB)

	w := doJSON(t, r, http.MethodPost, "/courts", gin.H{
		"name":         "Court 1",
		"description":  "Indoor court",
		"pricePerHour": 30.00,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Court domain.Court `json:"court"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created court: %v", err)
	}
	courtID := created.Court.ID

	w = doJSON(t, r, http.MethodGet, "/courts/"+itoa(courtID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	var court domain.Court
	if err := json.Unmarshal(w.Body.Bytes(), &court); err != nil {
		t.Fatalf("decode court: %v", err)
	}
	if court.Name != "Court 1" || !court.PricePerHour.Equal(decimal.RequireFromString("30")) {
		t.Fatalf("unexpected court payload: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/courts/"+itoa(courtID), gin.H{
		"name":         "Court 1",
		"description":  "Resurfaced indoor court",
		"pricePerHour": 35.00,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := gormDB.First(&court, courtID).Error; err != nil {
		t.Fatalf("reload court: %v", err)
	}
	if !court.PricePerHour.Equal(decimal.RequireFromString("35")) {
		t.Fatalf("expected price 35, got %s", court.PricePerHour)
	}

	w = doJSON(t, r, http.MethodDelete, "/courts/"+itoa(courtID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/courts/"+itoa(courtID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}
