package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/tonarcade/casino-backend/internal/domain/error"
	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user account HTTP requests
type UserHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	accountUseCase usecase.AccountUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// GetUser handles the GET /api/users/:userId endpoint. Unknown identifiers
// answer with the default account rather than 404.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("userId")

	account, err := h.accountUseCase.GetAccount(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error loading user account", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpsertUser handles the POST /api/users/:userId endpoint. The body is an
// arbitrary JSON object of account fields to merge.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	userID := c.Param("userId")

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request body",
		})
		return
	}

	if _, err := h.accountUseCase.UpsertAccount(c.Request.Context(), userID, fields); err != nil {
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Error upserting user account", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserSavedResponse{
		Success: true,
		Message: "User data saved",
	})
}
