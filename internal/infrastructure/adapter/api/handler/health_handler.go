package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthGreeting is the body of a successful health check
const HealthGreeting = "お疲れ様です！！"

// HealthHandler answers liveness checks
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles the GET /healthcheck endpoint
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthGreeting)
}
