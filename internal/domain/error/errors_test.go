package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidClaim", ErrInvalidClaim, 4001},
		{"Validation", ErrValidation, 4002},
		{"InvalidAmount", ErrInvalidAmount, 4003},
		{"NegativeAmount", ErrNegativeAmount, 4003},
		{"StaleClaim", ErrStaleClaim, 4100},
		{"Unverified", ErrUnverified, 4101},
		{"AlreadyProcessed", ErrAlreadyProcessed, 4102},
		{"InvalidTransition", ErrInvalidTransition, 4103},
		{"NotFound", ErrNotFound, 4040},
		{"Store", ErrStore, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrStaleClaim), 4100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestClaimError(t *testing.T) {
	claimErr := NewClaimError("tonkeeper", "user-1", "boc", ErrInvalidClaim)

	expectedMsg := "payment claim rejected (channel: tonkeeper, user: user-1, field: boc): claim is missing required fields"
	if claimErr.Error() != expectedMsg {
		t.Errorf("ClaimError.Error() = %s, want %s", claimErr.Error(), expectedMsg)
	}

	if !errors.Is(claimErr, ErrInvalidClaim) {
		t.Errorf("errors.Is(claimErr, ErrInvalidClaim) = false, want true")
	}
	if !IsValidationError(claimErr) {
		t.Errorf("IsValidationError(claimErr) = false, want true")
	}

	var typed *ClaimError
	if !errors.As(claimErr, &typed) {
		t.Fatalf("errors.As(claimErr, *ClaimError) = false, want true")
	}
	fields := typed.LogFields()
	if fields["channel"] != "tonkeeper" || fields["field"] != "boc" {
		t.Errorf("LogFields() = %v, missing channel/field", fields)
	}
}

func TestDuplicatePaymentError(t *testing.T) {
	dupErr := NewDuplicatePaymentError("telegram", "user-2", "tx-42")

	if !errors.Is(dupErr, ErrAlreadyProcessed) {
		t.Errorf("errors.Is(dupErr, ErrAlreadyProcessed) = false, want true")
	}
	if !IsAlreadyProcessedError(dupErr) {
		t.Errorf("IsAlreadyProcessedError(dupErr) = false, want true")
	}
	if IsValidationError(dupErr) {
		t.Errorf("IsValidationError(dupErr) = true, want false")
	}

	var typed *DuplicatePaymentError
	if !errors.As(dupErr, &typed) {
		t.Fatalf("errors.As(dupErr, *DuplicatePaymentError) = false, want true")
	}
	if typed.LogFields()["correlation_key"] != "tx-42" {
		t.Errorf("LogFields() missing correlation_key, got %v", typed.LogFields())
	}
}

func TestClassifiers(t *testing.T) {
	if !IsStaleClaimError(fmt.Errorf("wrapped: %w", ErrStaleClaim)) {
		t.Errorf("IsStaleClaimError(wrapped) = false, want true")
	}
	if !IsUnverifiedError(ErrUnverified) {
		t.Errorf("IsUnverifiedError = false, want true")
	}
	if !IsStoreError(fmt.Errorf("save users: %w", ErrStore)) {
		t.Errorf("IsStoreError(wrapped) = false, want true")
	}
	if !IsNotFoundError(ErrNotFound) {
		t.Errorf("IsNotFoundError = false, want true")
	}
	if IsStoreError(ErrNotFound) {
		t.Errorf("IsStoreError(ErrNotFound) = true, want false")
	}
}
