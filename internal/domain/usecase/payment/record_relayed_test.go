package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
	mockchain "github.com/tonarcade/casino-backend/mocks/port/chain"
	mockpersistence "github.com/tonarcade/casino-backend/mocks/port/persistence"
)

func relayedClaim() usecase.RelayedPaymentClaim {
	return usecase.RelayedPaymentClaim{
		UserID:        "user-1",
		Amount:        5,
		TransactionID: "tx-1",
		PaymentHash:   "hash-1",
	}
}

func TestPaymentUseCase_RecordRelayedPayment(t *testing.T) {
	t.Run("should record and credit a relayed claim without chain verification", func(t *testing.T) {
		// Arrange
		store := mockpersistence.NewMemorySnapshotStore()
		verifier := new(mockchain.MockVerifier)
		useCase := newPipeline(store, verifier)

		// Act
		result, err := useCase.RecordRelayedPayment(context.Background(), relayedClaim())

		// Assert
		assert.NoError(t, err)
		assert.True(t, result.Record.Verified)
		assert.Equal(t, entity.PaymentTypeTelegram, result.Record.Type)
		assert.Equal(t, fixedMillis, result.Record.Timestamp)
		assert.Equal(t, "105.00", result.NewBalance.String())
		verifier.AssertNotCalled(t, "VerifyTransaction")
	})

	t.Run("should credit the same transaction id only once", func(t *testing.T) {
		// Arrange
		store := mockpersistence.NewMemorySnapshotStore()
		useCase := newPipeline(store, new(mockchain.MockVerifier))

		// Act
		_, firstErr := useCase.RecordRelayedPayment(context.Background(), relayedClaim())
		_, secondErr := useCase.RecordRelayedPayment(context.Background(), relayedClaim())

		// Assert
		assert.NoError(t, firstErr)
		assert.ErrorIs(t, secondErr, errs.ErrAlreadyProcessed)
		assert.Len(t, store.Payments, 1)
		assert.Equal(t, "105.00", store.Users["user-1"].Balance.String())
	})

	t.Run("should reject claim without transaction id", func(t *testing.T) {
		// Arrange
		store := mockpersistence.NewMemorySnapshotStore()
		useCase := newPipeline(store, new(mockchain.MockVerifier))

		claim := relayedClaim()
		claim.TransactionID = ""

		// Act
		result, err := useCase.RecordRelayedPayment(context.Background(), claim)

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidClaim)
		assert.Nil(t, result)
		assert.Empty(t, store.Payments)
	})

	t.Run("should reject claim without user id", func(t *testing.T) {
		store := mockpersistence.NewMemorySnapshotStore()
		useCase := newPipeline(store, new(mockchain.MockVerifier))

		claim := relayedClaim()
		claim.UserID = ""

		_, err := useCase.RecordRelayedPayment(context.Background(), claim)

		assert.ErrorIs(t, err, errs.ErrInvalidClaim)
	})
}
