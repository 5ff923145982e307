package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/api/dto"
)

// HealthHandler answers liveness probes
type HealthHandler struct {
	timeProvider coreport.TimeProvider
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(timeProvider coreport.TimeProvider) *HealthHandler {
	return &HealthHandler{timeProvider: timeProvider}
}

// Health handles the GET /api/health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: h.timeProvider.NowUnixMilli(),
	})
}
