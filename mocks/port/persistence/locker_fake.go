package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

// FakeLocker is a working in-memory CollectionLocker for tests. It provides
// real mutual exclusion so concurrency tests exercise the same serialization
// the production locker gives.
type FakeLocker struct {
	mu    sync.Mutex
	locks map[persistence.Collection]*sync.Mutex

	AcquireErr error
}

// NewFakeLocker creates a new fake locker
func NewFakeLocker() *FakeLocker {
	return &FakeLocker{
		locks: make(map[persistence.Collection]*sync.Mutex),
	}
}

func (l *FakeLocker) lock(collection persistence.Collection) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[collection]
	if !ok {
		m = &sync.Mutex{}
		l.locks[collection] = m
	}
	return m
}

// AcquireLock locks the collections in sorted order
func (l *FakeLocker) AcquireLock(_ context.Context, collections ...persistence.Collection) error {
	if l.AcquireErr != nil {
		return l.AcquireErr
	}
	ordered := append([]persistence.Collection(nil), collections...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
	for _, collection := range ordered {
		l.lock(collection).Lock()
	}
	return nil
}

// ReleaseLock unlocks the collections in reverse sorted order
func (l *FakeLocker) ReleaseLock(collections ...persistence.Collection) {
	ordered := append([]persistence.Collection(nil), collections...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
	for i := len(ordered) - 1; i >= 0; i-- {
		l.lock(ordered[i]).Unlock()
	}
}
