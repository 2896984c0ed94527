package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Health(c *gin.Context) {
	h.status(c, "healthy")
}

func (h *HealthHandler) Ready(c *gin.Context) {
	h.status(c, "ready")
}

func (h *HealthHandler) status(c *gin.Context, status string) {
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"service":   "pairscope",
		"version":   "1.0.0",
		"timestamp": time.Now(),
	})
}
