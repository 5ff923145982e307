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

func TestPaymentUseCase_FindConfirmed(t *testing.T) {
	freshRecord := entity.PaymentRecord{
		ID:        "pay-1",
		UserID:    "user-1",
		Amount:    10,
		Address:   "EQsender",
		Timestamp: fixedMillis - 60_000,
		Verified:  true,
		Type:      entity.PaymentTypeTonkeeper,
	}

	newStore := func(records ...entity.PaymentRecord) *mockpersistence.MemorySnapshotStore {
		store := mockpersistence.NewMemorySnapshotStore()
		store.Payments = records
		return store
	}

	t.Run("should find a fresh matching payment", func(t *testing.T) {
		useCase := newPipeline(newStore(freshRecord), new(mockchain.MockVerifier))

		record, err := useCase.FindConfirmed(context.Background(), usecase.ConfirmedPaymentQuery{
			UserID: "user-1",
			Amount: 10.005, // inside the tolerance
			Type:   entity.PaymentTypeTonkeeper,
		})

		assert.NoError(t, err)
		assert.NotNil(t, record)
		assert.Equal(t, "pay-1", record.ID)
	})

	t.Run("should ignore payments outside the freshness window", func(t *testing.T) {
		stale := freshRecord
		stale.Timestamp = fixedMillis - 11*60*1000
		useCase := newPipeline(newStore(stale), new(mockchain.MockVerifier))

		record, err := useCase.FindConfirmed(context.Background(), usecase.ConfirmedPaymentQuery{
			UserID: "user-1",
			Amount: 10,
			Type:   entity.PaymentTypeTonkeeper,
		})

		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("should ignore amounts beyond the tolerance", func(t *testing.T) {
		useCase := newPipeline(newStore(freshRecord), new(mockchain.MockVerifier))

		record, err := useCase.FindConfirmed(context.Background(), usecase.ConfirmedPaymentQuery{
			UserID: "user-1",
			Amount: 10.02,
			Type:   entity.PaymentTypeTonkeeper,
		})

		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("should filter by sender address when given", func(t *testing.T) {
		useCase := newPipeline(newStore(freshRecord), new(mockchain.MockVerifier))

		record, err := useCase.FindConfirmed(context.Background(), usecase.ConfirmedPaymentQuery{
			UserID:  "user-1",
			Amount:  10,
			Type:    entity.PaymentTypeTonkeeper,
			Address: "EQother",
		})

		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("should not match across channels", func(t *testing.T) {
		useCase := newPipeline(newStore(freshRecord), new(mockchain.MockVerifier))

		record, err := useCase.FindConfirmed(context.Background(), usecase.ConfirmedPaymentQuery{
			UserID: "user-1",
			Amount: 10,
			Type:   entity.PaymentTypeTelegram,
		})

		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("should reject query without user id", func(t *testing.T) {
		useCase := newPipeline(newStore(), new(mockchain.MockVerifier))

		_, err := useCase.FindConfirmed(context.Background(), usecase.ConfirmedPaymentQuery{
			Amount: 10,
			Type:   entity.PaymentTypeTonkeeper,
		})

		assert.ErrorIs(t, err, errs.ErrInvalidClaim)
	})
}
