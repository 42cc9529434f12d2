// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports the liveness of the API and its backing stores.
type HealthController struct {
	dbChecker    func() bool
	cacheChecker func() bool
}

// HealthResponse represents the health check response. Cache is "disabled"
// when the service runs without Redis.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. A nil
// cacheChecker marks the cache as disabled.
func NewHealthController(dbChecker, cacheChecker func() bool) *HealthController {
	return &HealthController{
		dbChecker:    dbChecker,
		cacheChecker: cacheChecker,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbChecker != nil && h.dbChecker() {
		dbStatus = "connected"
	}

	cacheStatus := "disabled"
	if h.cacheChecker != nil {
		cacheStatus = "disconnected"
		if h.cacheChecker() {
			cacheStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		Cache:     cacheStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
