// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	backend        string
	storageChecker func() bool
	loadedChecker  func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Backend   string `json:"backend"`
	Storage   string `json:"storage"`
	Loaded    bool   `json:"loaded"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// backend names the selected storage backend; the checkers may be nil.
func NewHealthController(backend string, storageChecker, loadedChecker func() bool) *HealthController {
	return &HealthController{
		backend:        backend,
		storageChecker: storageChecker,
		loadedChecker:  loadedChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its storage backend.
func (h *HealthController) Check(c *gin.Context) {
	storageStatus := "disconnected"
	if h.storageChecker != nil && h.storageChecker() {
		storageStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		Backend:   h.backend,
		Storage:   storageStatus,
		Loaded:    h.loadedChecker != nil && h.loadedChecker(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
