package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/api/dto"
)

// maxListLimit bounds the limit query parameter on list endpoints.
const maxListLimit = 1000

// respondError maps a domain error to an HTTP status and the standard error
// body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = "Not found"
	case domainerr.IsStoreError(err):
		message = "Storage failure"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// parseListLimit reads the limit query parameter, falling back to the
// endpoint's default when absent or non-numeric. A numeric limit outside
// 1..1000 is rejected with a 400; the second return value reports whether the
// caller should proceed.
func parseListLimit(c *gin.Context, fallback int) (int, bool) {
	limit := fallback
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	if limit < 1 || limit > maxListLimit {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Limit must be between 1 and 1000",
		})
		return 0, false
	}
	return limit, true
}
