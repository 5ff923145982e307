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

// defaultPrizeListLimit bounds GET /api/prizes when no limit is given.
const defaultPrizeListLimit = 50

// PrizeHandler handles prize feed HTTP requests
type PrizeHandler struct {
	prizeUseCase usecase.PrizeUseCase
	logger       coreport.Logger
}

// NewPrizeHandler creates a new prize handler instance
func NewPrizeHandler(
	prizeUseCase usecase.PrizeUseCase,
	logger coreport.Logger,
) *PrizeHandler {
	return &PrizeHandler{
		prizeUseCase: prizeUseCase,
		logger:       logger,
	}
}

// ListPrizes handles the GET /api/prizes endpoint
func (h *PrizeHandler) ListPrizes(c *gin.Context) {
	limit, ok := parseListLimit(c, defaultPrizeListLimit)
	if !ok {
		return
	}

	prizes, err := h.prizeUseCase.ListPrizes(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Error listing prizes", map[string]any{"error": err.Error()})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PrizeListResponse{Prizes: prizes})
}

// AddPrize handles the POST /api/prizes endpoint
func (h *PrizeHandler) AddPrize(c *gin.Context) {
	var req dto.AddPrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request body",
		})
		return
	}

	_, err := h.prizeUseCase.AddPrize(c.Request.Context(), entity.PrizeRecord{
		Name:      req.Name,
		Value:     req.Value,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Error adding prize", map[string]any{"error": err.Error()})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PrizeCreatedResponse{
		Success: true,
		Message: "Prize added",
	})
}
