package persistence

import "context"

// Collection names one of the persisted documents. Each collection is a single
// JSON document: the user collection is an object keyed by user id, the other
// four are arrays of records. The names double as file names (file backing),
// redis keys and table rows (postgres backing), preserving the on-disk layout
// tooling may inspect.
type Collection string

const (
	CollectionUsers     Collection = "users_data"
	CollectionPrizes    Collection = "prizes_data"
	CollectionCrashBets Collection = "crash_bets"
	CollectionDiceGames Collection = "dice_games"
	CollectionPayments  Collection = "payments_data"
)

// Collections lists every persisted collection, in seed order.
func Collections() []Collection {
	return []Collection{
		CollectionUsers,
		CollectionPrizes,
		CollectionCrashBets,
		CollectionDiceGames,
		CollectionPayments,
	}
}

// DocumentStore is the raw storage backing: whole-document load and save per
// collection. Implementations must make Save effectively atomic: a concurrent
// Load never observes a partially written document.
type DocumentStore interface {
	// Load returns the raw document for the collection.
	//
	// Possible errors:
	// - ErrNotFound: if no document has been persisted yet
	// - ErrStore: if the backing storage fails
	Load(ctx context.Context, collection Collection) ([]byte, error)

	// Save atomically replaces the document for the collection.
	//
	// Possible errors:
	// - ErrStore: if the backing storage fails
	Save(ctx context.Context, collection Collection, data []byte) error
}
