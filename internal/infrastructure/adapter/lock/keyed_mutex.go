// Package lock provides the in-process mutual exclusion scope around every
// collection read-modify-write cycle. The process holds exclusive write access
// to the persisted documents, so in-process locking is sufficient; the port
// keeps a distributed implementation possible.
package lock

import (
	"context"
	"sort"
	"sync"

	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

// KeyedMutex implements persistence.CollectionLocker with one semaphore per
// collection. Multi-collection acquisitions always lock in sorted name order
// so overlapping operations cannot deadlock each other.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[persistence.Collection]chan struct{}
}

// NewKeyedMutex creates a new keyed mutex locker
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[persistence.Collection]chan struct{}),
	}
}

// semaphore returns the channel guarding the collection, creating it on first use.
func (m *KeyedMutex) semaphore(collection persistence.Collection) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	sem, ok := m.locks[collection]
	if !ok {
		sem = make(chan struct{}, 1)
		m.locks[collection] = sem
	}
	return sem
}

// sorted returns the collections in canonical locking order.
func sorted(collections []persistence.Collection) []persistence.Collection {
	ordered := make([]persistence.Collection, len(collections))
	copy(ordered, collections)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
	return ordered
}

// AcquireLock blocks until every given collection is locked or the context is
// done. On context failure, locks already acquired are released again so the
// caller never holds a partial set.
func (m *KeyedMutex) AcquireLock(ctx context.Context, collections ...persistence.Collection) error {
	ordered := sorted(collections)
	for i, collection := range ordered {
		select {
		case m.semaphore(collection) <- struct{}{}:
		case <-ctx.Done():
			for j := i - 1; j >= 0; j-- {
				<-m.semaphore(ordered[j])
			}
			return ctx.Err()
		}
	}
	return nil
}

// ReleaseLock releases previously acquired locks, in reverse canonical order.
func (m *KeyedMutex) ReleaseLock(collections ...persistence.Collection) {
	ordered := sorted(collections)
	for i := len(ordered) - 1; i >= 0; i-- {
		select {
		case <-m.semaphore(ordered[i]):
		default:
			// Releasing an unheld lock is a programming error; make it
			// visible instead of silently corrupting the semaphore.
			panic("lock: release of unheld collection lock " + string(ordered[i]))
		}
	}
}
