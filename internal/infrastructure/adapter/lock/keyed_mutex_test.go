package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("should serialize access to the same collection", func(t *testing.T) {
		locker := NewKeyedMutex()
		counter := 0

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, locker.AcquireLock(context.Background(), persistence.CollectionUsers))
				defer locker.ReleaseLock(persistence.CollectionUsers)
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, counter)
	})

	t.Run("should allow different collections concurrently", func(t *testing.T) {
		locker := NewKeyedMutex()
		assert.NoError(t, locker.AcquireLock(context.Background(), persistence.CollectionUsers))
		defer locker.ReleaseLock(persistence.CollectionUsers)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		err := locker.AcquireLock(ctx, persistence.CollectionPrizes)
		assert.NoError(t, err)
		locker.ReleaseLock(persistence.CollectionPrizes)
	})

	t.Run("should fail acquisition when the context expires", func(t *testing.T) {
		locker := NewKeyedMutex()
		assert.NoError(t, locker.AcquireLock(context.Background(), persistence.CollectionUsers))
		defer locker.ReleaseLock(persistence.CollectionUsers)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := locker.AcquireLock(ctx, persistence.CollectionUsers)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("should release partial acquisitions on context failure", func(t *testing.T) {
		locker := NewKeyedMutex()
		// Hold users so a multi-collection acquire blocks halfway through.
		assert.NoError(t, locker.AcquireLock(context.Background(), persistence.CollectionUsers))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := locker.AcquireLock(ctx, persistence.CollectionPayments, persistence.CollectionUsers)
		assert.Error(t, err)

		// Payments must have been released again.
		freshCtx, freshCancel := context.WithTimeout(context.Background(), time.Second)
		defer freshCancel()
		assert.NoError(t, locker.AcquireLock(freshCtx, persistence.CollectionPayments))
		locker.ReleaseLock(persistence.CollectionPayments)

		locker.ReleaseLock(persistence.CollectionUsers)
	})

	t.Run("should lock multiple collections in one call", func(t *testing.T) {
		locker := NewKeyedMutex()
		err := locker.AcquireLock(context.Background(),
			persistence.CollectionPayments, persistence.CollectionUsers)
		assert.NoError(t, err)
		locker.ReleaseLock(persistence.CollectionPayments, persistence.CollectionUsers)

		// Both are free again.
		assert.NoError(t, locker.AcquireLock(context.Background(), persistence.CollectionUsers))
		locker.ReleaseLock(persistence.CollectionUsers)
	})
}
