package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	domainerr "github.com/tonarcade/casino-backend/internal/domain/error"
	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/api/dto"
)

// CrashHandler handles crash bet HTTP requests
type CrashHandler struct {
	crashUseCase usecase.CrashUseCase
	logger       coreport.Logger
}

// NewCrashHandler creates a new crash handler instance
func NewCrashHandler(
	crashUseCase usecase.CrashUseCase,
	logger coreport.Logger,
) *CrashHandler {
	return &CrashHandler{
		crashUseCase: crashUseCase,
		logger:       logger,
	}
}

// ListBets handles the GET /api/crash/bets endpoint
func (h *CrashHandler) ListBets(c *gin.Context) {
	bets, err := h.crashUseCase.ListBets(c.Request.Context())
	if err != nil {
		h.logger.Error("Error listing crash bets", map[string]any{"error": err.Error()})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bets)
}

// UpsertBet handles the POST /api/crash/bets endpoint. The bet body is free
// form apart from the id and lifecycle fields, so it binds straight into the
// entity's custom decoder.
func (h *CrashHandler) UpsertBet(c *gin.Context) {
	var bet entity.CrashBet
	if err := c.ShouldBindJSON(&bet); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request body",
		})
		return
	}

	if _, err := h.crashUseCase.UpsertBet(c.Request.Context(), bet); err != nil {
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Error upserting crash bet", map[string]any{
				"betId": bet.ID,
				"error": err.Error(),
			})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CrashBetResponse{
		Success: true,
		Message: "Bet saved",
	})
}

// CleanBets handles the DELETE /api/crash/bets/clean endpoint
func (h *CrashHandler) CleanBets(c *gin.Context) {
	removed, err := h.crashUseCase.CleanBets(c.Request.Context())
	if err != nil {
		h.logger.Error("Error cleaning crash bets", map[string]any{"error": err.Error()})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CleanBetsResponse{
		Success: true,
		Deleted: removed,
	})
}
