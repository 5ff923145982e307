package prize

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
	mockcore "github.com/tonarcade/casino-backend/mocks/port/core"
	mockpersistence "github.com/tonarcade/casino-backend/mocks/port/persistence"
)

const fixedMillis = int64(1_700_000_000_000)

func newPrizeUseCase(store *mockpersistence.MemorySnapshotStore) usecase.PrizeUseCase {
	logger := new(mockcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	tp := new(mockcore.MockTimeProvider)
	tp.On("NowUnixMilli").Return(fixedMillis).Maybe()

	return NewPrizeUseCase(store, mockpersistence.NewFakeLocker(), tp, logger)
}

func TestPrizeUseCase_AddPrize(t *testing.T) {
	t.Run("should stamp id and timestamp and persist the prize", func(t *testing.T) {
		// Arrange
		store := mockpersistence.NewMemorySnapshotStore()
		useCase := newPrizeUseCase(store)

		// Act
		prize, err := useCase.AddPrize(context.Background(), entity.PrizeRecord{
			Name:  "Golden Hat",
			Value: 25,
		})

		// Assert
		assert.NoError(t, err)
		assert.NotEmpty(t, prize.ID)
		assert.Equal(t, fixedMillis, prize.Timestamp)
		assert.Len(t, store.Prizes, 1)
	})

	t.Run("should reject prize without name", func(t *testing.T) {
		useCase := newPrizeUseCase(mockpersistence.NewMemorySnapshotStore())

		_, err := useCase.AddPrize(context.Background(), entity.PrizeRecord{Value: 25})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject negative prize value", func(t *testing.T) {
		useCase := newPrizeUseCase(mockpersistence.NewMemorySnapshotStore())

		_, err := useCase.AddPrize(context.Background(), entity.PrizeRecord{Name: "Hat", Value: -1})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should evict the oldest prize at the cap", func(t *testing.T) {
		// Arrange
		store := mockpersistence.NewMemorySnapshotStore()
		for i := 0; i < entity.MaxPrizeRecords; i++ {
			store.Prizes = append(store.Prizes, entity.PrizeRecord{
				ID:        strconv.Itoa(i),
				Name:      "Prize " + strconv.Itoa(i),
				Timestamp: fixedMillis - int64(i),
			})
		}
		useCase := newPrizeUseCase(store)

		// Act
		_, err := useCase.AddPrize(context.Background(), entity.PrizeRecord{Name: "Overflow", Value: 1})

		// Assert
		assert.NoError(t, err)
		assert.Len(t, store.Prizes, entity.MaxPrizeRecords)
		assert.Equal(t, "1", store.Prizes[0].ID)
		assert.Equal(t, "Overflow", store.Prizes[len(store.Prizes)-1].Name)
	})
}

func TestPrizeUseCase_ListPrizes(t *testing.T) {
	t.Run("should return newest first and honor the limit", func(t *testing.T) {
		// Arrange
		store := mockpersistence.NewMemorySnapshotStore()
		store.Prizes = []entity.PrizeRecord{
			{ID: "old", Timestamp: fixedMillis - 3000},
			{ID: "newest", Timestamp: fixedMillis - 1000},
			{ID: "middle", Timestamp: fixedMillis - 2000},
		}
		useCase := newPrizeUseCase(store)

		// Act
		prizes, err := useCase.ListPrizes(context.Background(), 2)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, prizes, 2)
		assert.Equal(t, "newest", prizes[0].ID)
		assert.Equal(t, "middle", prizes[1].ID)
	})

	t.Run("should not mutate the stored feed", func(t *testing.T) {
		store := mockpersistence.NewMemorySnapshotStore()
		store.Prizes = []entity.PrizeRecord{
			{ID: "a", Timestamp: 1},
			{ID: "b", Timestamp: 2},
		}
		useCase := newPrizeUseCase(store)

		_, err := useCase.ListPrizes(context.Background(), 0)

		assert.NoError(t, err)
		assert.Equal(t, "a", store.Prizes[0].ID)
	})
}
