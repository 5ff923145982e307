package persistence

import "context"

// CollectionLocker serializes read-modify-write cycles on shared collections.
// Every mutation path acquires the locks for the collections it touches before
// loading and releases them only after the save completed, on every exit path.
// Implementations must lock multiple collections in one canonical order so
// that overlapping multi-collection operations (payment + user credit) cannot
// deadlock.
type CollectionLocker interface {
	// AcquireLock blocks until all given collections are locked, or the
	// context is done.
	//
	// Possible errors:
	// - ctx.Err(): if the context is canceled while waiting
	AcquireLock(ctx context.Context, collections ...Collection) error

	// ReleaseLock releases previously acquired locks.
	ReleaseLock(collections ...Collection)
}
