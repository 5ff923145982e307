package persistence

import (
	"context"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
)

// SnapshotStore is the typed view over the document store: full in-memory
// snapshots of each collection. Load methods materialize the empty default
// when nothing is persisted yet, and (unless the store runs in strict mode)
// also when the persisted document is unreadable. Treating corruption as "no
// records yet" keeps the service answering; strict mode surfaces ErrStore
// instead.
type SnapshotStore interface {
	// LoadUsers returns the user mapping keyed by user identifier.
	LoadUsers(ctx context.Context) (map[string]*entity.UserAccount, error)
	// SaveUsers atomically replaces the user mapping.
	SaveUsers(ctx context.Context, users map[string]*entity.UserAccount) error

	// LoadPrizes returns the prize feed, oldest first.
	LoadPrizes(ctx context.Context) ([]entity.PrizeRecord, error)
	// SavePrizes atomically replaces the prize feed.
	SavePrizes(ctx context.Context, prizes []entity.PrizeRecord) error

	// LoadCrashBets returns all stored crash bets.
	LoadCrashBets(ctx context.Context) ([]entity.CrashBet, error)
	// SaveCrashBets atomically replaces the crash bet list.
	SaveCrashBets(ctx context.Context, bets []entity.CrashBet) error

	// LoadDiceGames returns the dice history, oldest first.
	LoadDiceGames(ctx context.Context) ([]entity.DiceGame, error)
	// SaveDiceGames atomically replaces the dice history.
	SaveDiceGames(ctx context.Context, games []entity.DiceGame) error

	// LoadPayments returns the payment trace, oldest first.
	LoadPayments(ctx context.Context) ([]entity.PaymentRecord, error)
	// SavePayments atomically replaces the payment trace.
	SavePayments(ctx context.Context, payments []entity.PaymentRecord) error
}
