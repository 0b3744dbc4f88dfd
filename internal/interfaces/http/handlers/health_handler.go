package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/pharmyrus/internal/config"
)

// HealthHandler serves the liveness, readiness and service-info endpoints.
type HealthHandler struct {
	keyPoolSize int
}

// NewHealthHandler constructs a HealthHandler.  keyPoolSize feeds the
// readiness check: with no search credentials the pipeline cannot run.
func NewHealthHandler(keyPoolSize int) *HealthHandler {
	return &HealthHandler{keyPoolSize: keyPoolSize}
}

// Health handles GET /healthz.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"version":   config.Version,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Ready handles GET /readyz.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.keyPoolSize == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "no search API credentials configured",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"keys":   h.keyPoolSize,
	})
}

// Info handles GET /, describing the API for humans poking at the root.
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Pharmyrus API",
		"version":     config.Version,
		"description": "Brazilian pharmaceutical patent search",
		"endpoints": gin.H{
			"POST /api/v1/search": "run a patent search",
			"GET /healthz":        "liveness probe",
			"GET /readyz":         "readiness probe",
			"GET /metrics":        "Prometheus metrics",
		},
		"example_request": gin.H{
			"nome_molecula":  "darolutamide",
			"nome_comercial": "Nubeqa",
		},
	})
}
