package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	domainerr "github.com/tonarcade/casino-backend/internal/domain/error"
	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/api/dto"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(
	paymentUseCase usecase.PaymentUseCase,
	logger coreport.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

// rejectionFields extracts structured log fields from claim and duplicate
// errors, falling back to the bare message.
func rejectionFields(err error) map[string]any {
	var claimErr *domainerr.ClaimError
	if errors.As(err, &claimErr) {
		return claimErr.LogFields()
	}
	var dupErr *domainerr.DuplicatePaymentError
	if errors.As(err, &dupErr) {
		return dupErr.LogFields()
	}
	return map[string]any{"error": err.Error()}
}

// isRejection reports whether the error is a negative pipeline outcome rather
// than malformed input or a server fault. Rejections answer HTTP 200 with a
// negative body; validation failures keep their 400 from respondError.
func isRejection(err error) bool {
	return domainerr.IsStaleClaimError(err) ||
		domainerr.IsUnverifiedError(err) ||
		domainerr.IsAlreadyProcessedError(err)
}

// rejectionMessage maps a rejection to the caller-facing message.
func rejectionMessage(err error) string {
	switch {
	case domainerr.IsStaleClaimError(err):
		return "Transaction too old"
	case domainerr.IsAlreadyProcessedError(err):
		return "Payment already processed"
	case domainerr.IsUnverifiedError(err):
		return "Transaction not verified"
	default:
		return err.Error()
	}
}

// VerifyPayment handles the POST /api/payments/verify endpoint
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.paymentUseCase.VerifyChainPayment(c.Request.Context(), usecase.ChainPaymentClaim{
		UserID:        req.UserID,
		BOC:           req.BOC,
		Amount:        req.Amount,
		Timestamp:     req.Timestamp,
		SenderAddress: req.SenderAddress,
	})
	if err != nil {
		if isRejection(err) {
			h.logger.Warn("Payment claim rejected", rejectionFields(err))
			c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
				Verified: false,
				Message:  rejectionMessage(err),
				Code:     domainerr.ErrorCode(err),
			})
			return
		}
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Payment processing failed", map[string]any{"error": err.Error()})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		Verified:   true,
		Message:    "Payment verified",
		NewBalance: result.NewBalance.String(),
	})
}

// TelegramPayment handles the POST /api/payments/telegram endpoint
func (h *PaymentHandler) TelegramPayment(c *gin.Context) {
	var req dto.TelegramPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.paymentUseCase.RecordRelayedPayment(c.Request.Context(), usecase.RelayedPaymentClaim{
		UserID:        req.UserID,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		PaymentHash:   req.PaymentHash,
		Timestamp:     req.Timestamp,
	})
	if err != nil {
		if isRejection(err) {
			h.logger.Warn("Payment claim rejected", rejectionFields(err))
			c.JSON(http.StatusOK, dto.TelegramPaymentResponse{
				Success: false,
				Message: rejectionMessage(err),
				Code:    domainerr.ErrorCode(err),
			})
			return
		}
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Payment processing failed", map[string]any{"error": err.Error()})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TelegramPaymentResponse{
		Success:    true,
		Message:    "Payment saved and processed",
		NewBalance: result.NewBalance.String(),
	})
}

// checkPayment answers the polling endpoints for both channels. Lookups are
// read-only; a miss is a normal answer, not an error.
func (h *PaymentHandler) checkPayment(c *gin.Context, paymentType entity.PaymentType) (*entity.PaymentRecord, bool) {
	var req dto.CheckPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request body",
		})
		return nil, false
	}

	query := usecase.ConfirmedPaymentQuery{
		UserID: req.UserID,
		Amount: req.Amount,
		Type:   paymentType,
	}
	if paymentType == entity.PaymentTypeTonkeeper {
		if req.Address == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.CodeValidation,
				Message: "Missing required fields: userId, amount, address",
			})
			return nil, false
		}
		query.Address = req.Address
	}

	record, err := h.paymentUseCase.FindConfirmed(c.Request.Context(), query)
	if err != nil {
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Error looking up confirmed payment", map[string]any{
				"userId": query.UserID,
				"type":   string(paymentType),
				"error":  err.Error(),
			})
		}
		respondError(c, err)
		return nil, false
	}
	return record, true
}

// CheckTonkeeper handles the POST /api/payments/check-tonkeeper endpoint
func (h *PaymentHandler) CheckTonkeeper(c *gin.Context) {
	record, ok := h.checkPayment(c, entity.PaymentTypeTonkeeper)
	if !ok {
		return
	}
	if record == nil {
		c.JSON(http.StatusOK, dto.TonkeeperCheckResponse{
			Verified: false,
			Message:  "Payment not found. Please check the blockchain manually or try again later.",
		})
		return
	}
	c.JSON(http.StatusOK, dto.TonkeeperCheckResponse{
		Verified:      true,
		Message:       "Payment verified",
		TransactionID: record.TransactionID,
	})
}

// CheckTelegram handles the POST /api/payments/check-telegram endpoint
func (h *PaymentHandler) CheckTelegram(c *gin.Context) {
	record, ok := h.checkPayment(c, entity.PaymentTypeTelegram)
	if !ok {
		return
	}
	if record == nil {
		c.JSON(http.StatusOK, dto.TelegramCheckResponse{
			Verified:     false,
			PaymentFound: false,
			Message:      "Payment not found yet",
		})
		return
	}
	c.JSON(http.StatusOK, dto.TelegramCheckResponse{
		Verified:      true,
		PaymentFound:  true,
		Message:       "Payment verified",
		TransactionID: record.TransactionID,
	})
}
