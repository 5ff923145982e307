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

// defaultDiceListLimit bounds GET /api/dice/games when no limit is given.
const defaultDiceListLimit = 100

// DiceHandler handles dice game HTTP requests
type DiceHandler struct {
	diceUseCase usecase.DiceUseCase
	logger      coreport.Logger
}

// NewDiceHandler creates a new dice handler instance
func NewDiceHandler(
	diceUseCase usecase.DiceUseCase,
	logger coreport.Logger,
) *DiceHandler {
	return &DiceHandler{
		diceUseCase: diceUseCase,
		logger:      logger,
	}
}

// ListGames handles the GET /api/dice/games endpoint
func (h *DiceHandler) ListGames(c *gin.Context) {
	limit, ok := parseListLimit(c, defaultDiceListLimit)
	if !ok {
		return
	}

	games, err := h.diceUseCase.ListGames(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Error listing dice games", map[string]any{"error": err.Error()})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// RecordGame handles the POST /api/dice/games endpoint
func (h *DiceHandler) RecordGame(c *gin.Context) {
	var req dto.RecordDiceGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request body",
		})
		return
	}
	if req.UserID == "" || req.Result == nil || req.BetAmount == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Missing required fields: userId, result, betAmount",
		})
		return
	}

	_, err := h.diceUseCase.RecordGame(c.Request.Context(), entity.DiceGame{
		UserID:    req.UserID,
		Result:    *req.Result,
		BetAmount: *req.BetAmount,
		Won:       req.Won,
		Winnings:  req.Winnings,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Error recording dice game", map[string]any{
				"userId": req.UserID,
				"error":  err.Error(),
			})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DiceGameCreatedResponse{
		Success: true,
		Message: "Game result saved",
	})
}

// Stats handles the GET /api/dice/stats/:userId endpoint
func (h *DiceHandler) Stats(c *gin.Context) {
	userID := c.Param("userId")

	stats, err := h.diceUseCase.Stats(c.Request.Context(), userID)
	if err != nil {
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Error computing dice stats", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
