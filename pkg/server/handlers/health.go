package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/triplo/pkg/factstore"
)

// Build information - can be set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	GoVersion = runtime.Version()
)

// HealthHandler handles health check requests
type HealthHandler struct {
	store *factstore.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store *factstore.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthCheck handles GET /health - liveness plus store counts
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := gin.H{
		"status":    "healthy",
		"service":   "triplo",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	}
	if h.store != nil {
		stats := h.store.Stats()
		resp["facts"] = stats.FactCount
		resp["nodes"] = stats.NodeCount
	}
	c.JSON(http.StatusOK, resp)
}

// LivenessCheck handles GET /live - bare process liveness
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
