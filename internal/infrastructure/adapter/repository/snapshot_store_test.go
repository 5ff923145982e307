package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
	"github.com/tonarcade/casino-backend/internal/infrastructure/adapter/store/file"
	mockcore "github.com/tonarcade/casino-backend/mocks/port/core"
)

func newTestLogger() *mockcore.MockLogger {
	logger := new(mockcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func newFileBacked(t *testing.T, strict bool) (*SnapshotStore, persistence.DocumentStore) {
	t.Helper()
	backing, err := file.NewStore(t.TempDir())
	assert.NoError(t, err)
	return NewSnapshotStore(backing, newTestLogger(), strict), backing
}

func TestSnapshotStore_Seed(t *testing.T) {
	t.Run("should persist empty defaults for every collection", func(t *testing.T) {
		store, backing := newFileBacked(t, false)
		ctx := context.Background()

		assert.NoError(t, store.Seed(ctx))

		for _, collection := range persistence.Collections() {
			raw, err := backing.Load(ctx, collection)
			assert.NoError(t, err, string(collection))
			expected := `[]`
			if collection == persistence.CollectionUsers {
				expected = `{}`
			}
			assert.JSONEq(t, expected, string(raw), string(collection))
		}
	})

	t.Run("should not overwrite existing documents", func(t *testing.T) {
		store, _ := newFileBacked(t, false)
		ctx := context.Background()

		users := map[string]*entity.UserAccount{
			"user-1": {UserID: "user-1", Balance: 500},
		}
		assert.NoError(t, store.SaveUsers(ctx, users))

		assert.NoError(t, store.Seed(ctx))

		loaded, err := store.LoadUsers(ctx)
		assert.NoError(t, err)
		assert.Equal(t, entity.Amount(500), loaded["user-1"].Balance)
	})
}

func TestSnapshotStore_Defaults(t *testing.T) {
	t.Run("should materialize empty users map when nothing is persisted", func(t *testing.T) {
		store, _ := newFileBacked(t, false)

		users, err := store.LoadUsers(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("should materialize empty slices when nothing is persisted", func(t *testing.T) {
		store, _ := newFileBacked(t, false)

		prizes, err := store.LoadPrizes(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, prizes)

		payments, err := store.LoadPayments(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, payments)
	})
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	t.Run("should round trip users through the document store", func(t *testing.T) {
		store, _ := newFileBacked(t, false)
		ctx := context.Background()

		users := map[string]*entity.UserAccount{
			"user-1": {
				UserID:    "user-1",
				Balance:   1337,
				Inventory: []any{"sword"},
				Extra:     map[string]any{"nickname": "ace"},
			},
		}
		assert.NoError(t, store.SaveUsers(ctx, users))

		loaded, err := store.LoadUsers(ctx)
		assert.NoError(t, err)
		assert.Equal(t, entity.Amount(1337), loaded["user-1"].Balance)
		assert.Equal(t, "ace", loaded["user-1"].Extra["nickname"])
	})

	t.Run("should persist nil slices as empty arrays", func(t *testing.T) {
		store, backing := newFileBacked(t, false)
		ctx := context.Background()

		assert.NoError(t, store.SavePrizes(ctx, nil))

		raw, err := backing.Load(ctx, persistence.CollectionPrizes)
		assert.NoError(t, err)
		assert.JSONEq(t, `[]`, string(raw))
	})

	t.Run("should round trip crash bets with extras", func(t *testing.T) {
		store, _ := newFileBacked(t, false)
		ctx := context.Background()

		bets := []entity.CrashBet{{
			ID:        "bet-1",
			Status:    entity.BetStatusPlaced,
			Timestamp: 1000,
			Extra:     map[string]any{"stake": 5.0},
		}}
		assert.NoError(t, store.SaveCrashBets(ctx, bets))

		loaded, err := store.LoadCrashBets(ctx)
		assert.NoError(t, err)
		assert.Equal(t, bets, loaded)
	})
}

func TestSnapshotStore_Corruption(t *testing.T) {
	t.Run("should degrade corrupt documents to empty in lenient mode", func(t *testing.T) {
		store, backing := newFileBacked(t, false)
		ctx := context.Background()

		assert.NoError(t, backing.Save(ctx, persistence.CollectionUsers, []byte(`{{{not json`)))

		users, err := store.LoadUsers(ctx)
		assert.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("should surface corrupt documents in strict mode", func(t *testing.T) {
		store, backing := newFileBacked(t, true)
		ctx := context.Background()

		assert.NoError(t, backing.Save(ctx, persistence.CollectionUsers, []byte(`{{{not json`)))

		_, err := store.LoadUsers(ctx)
		assert.ErrorIs(t, err, errs.ErrStore)
	})
}
