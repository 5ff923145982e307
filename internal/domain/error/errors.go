package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors and negative outcomes
	CodeInvalidClaim      = 4001
	CodeValidation        = 4002
	CodeInvalidAmount     = 4003
	CodeStaleClaim        = 4100
	CodeUnverified        = 4101
	CodeAlreadyProcessed  = 4102
	CodeInvalidTransition = 4103
	CodeNotFound          = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStore          = 5030
)

// Base error types
var (
	// ErrInvalidClaim is returned when a payment claim is missing required fields
	ErrInvalidClaim = errors.New("claim is missing required fields")

	// ErrValidation is returned when caller-supplied data is malformed
	ErrValidation = errors.New("invalid request data")

	// ErrInvalidAmount is returned when a monetary amount has an invalid format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when an amount is too large to represent
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrStaleClaim is returned when a payment claim is older than the freshness window
	ErrStaleClaim = errors.New("transaction too old")

	// ErrUnverified is returned when the chain verifier rejected a claim
	ErrUnverified = errors.New("transaction not verified")

	// ErrAlreadyProcessed is returned when a payment with the same correlation
	// key was already credited. This is a normal negative outcome for the
	// caller, not a server fault: it is the idempotency guarantee working.
	ErrAlreadyProcessed = errors.New("payment already processed")

	// ErrInvalidTransition is returned when a bet submission attempts an
	// impossible lifecycle transition
	ErrInvalidTransition = errors.New("invalid bet state transition")

	// ErrNotFound is returned when a requested resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrStore is returned when the record store fails to read or write a snapshot
	ErrStore = errors.New("record store failure")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidClaim):
		return CodeInvalidClaim
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrStaleClaim):
		return CodeStaleClaim
	case errors.Is(err, ErrUnverified):
		return CodeUnverified
	case errors.Is(err, ErrAlreadyProcessed):
		return CodeAlreadyProcessed
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrStore):
		return CodeStore
	default:
		return CodeInternalServer
	}
}

// ClaimError carries the context of a rejected payment claim
type ClaimError struct {
	Channel string // "tonkeeper" or "telegram"
	UserID  string
	Field   string // the missing or invalid field, when applicable
	Err     error
}

// Error implements the error interface for ClaimError
func (e *ClaimError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("payment claim rejected (channel: %s, user: %s, field: %s): %v",
			e.Channel, e.UserID, e.Field, e.Err)
	}
	return fmt.Sprintf("payment claim rejected (channel: %s, user: %s): %v", e.Channel, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *ClaimError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ClaimError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "claim_error",
		"channel":    e.Channel,
		"user_id":    e.UserID,
		"field":      e.Field,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewClaimError creates a detailed claim rejection error
func NewClaimError(channel, userID, field string, err error) error {
	return &ClaimError{
		Channel: channel,
		UserID:  userID,
		Field:   field,
		Err:     err,
	}
}

// DuplicatePaymentError provides details about an idempotency hit
type DuplicatePaymentError struct {
	Channel        string
	UserID         string
	CorrelationKey string
}

// Error implements the error interface
func (e *DuplicatePaymentError) Error() string {
	return fmt.Sprintf("duplicate payment detected: correlation key %q for user %s on channel %s",
		e.CorrelationKey, e.UserID, e.Channel)
}

// Is checks if the target error is an ErrAlreadyProcessed
func (e *DuplicatePaymentError) Is(target error) bool {
	return target == ErrAlreadyProcessed
}

// LogFields returns a map of fields for structured logging
func (e *DuplicatePaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "duplicate_payment",
		"channel":         e.Channel,
		"user_id":         e.UserID,
		"correlation_key": e.CorrelationKey,
		"error_code":      CodeAlreadyProcessed,
	}
}

// NewDuplicatePaymentError creates a new detailed duplicate payment error
func NewDuplicatePaymentError(channel, userID, correlationKey string) error {
	return &DuplicatePaymentError{
		Channel:        channel,
		UserID:         userID,
		CorrelationKey: correlationKey,
	}
}

// IsValidationError checks if the error is caller-input validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidClaim) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidTransition)
}

// IsAlreadyProcessedError checks if the error is an idempotency hit
func IsAlreadyProcessedError(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed)
}

// IsStaleClaimError checks if the error is a staleness rejection
func IsStaleClaimError(err error) bool {
	return errors.Is(err, ErrStaleClaim)
}

// IsUnverifiedError checks if the error is a verifier rejection
func IsUnverifiedError(err error) bool {
	return errors.Is(err, ErrUnverified)
}

// IsStoreError checks if the error came from the record store
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStore)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
