package game

import (
	"context"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

// ListBets returns the bets inside the retention window. Pruning happens
// lazily on this read path: when stale bets are found, the pruned list is
// written back so repeat reads skip re-filtering the same records. The lock
// is held because this read can mutate the collection.
func (u *CrashUseCase) ListBets(ctx context.Context) ([]entity.CrashBet, error) {
	if err := u.locker.AcquireLock(ctx, persistence.CollectionCrashBets); err != nil {
		return nil, err
	}
	defer u.locker.ReleaseLock(persistence.CollectionCrashBets)

	bets, err := u.store.LoadCrashBets(ctx)
	if err != nil {
		return nil, err
	}

	kept, _, err := u.pruneBets(ctx, bets)
	if err != nil {
		return nil, err
	}
	return kept, nil
}

// CleanBets prunes stale bets and reports how many were removed. Unlike
// ListBets this exists for explicit maintenance calls.
func (u *CrashUseCase) CleanBets(ctx context.Context) (int, error) {
	if err := u.locker.AcquireLock(ctx, persistence.CollectionCrashBets); err != nil {
		return 0, err
	}
	defer u.locker.ReleaseLock(persistence.CollectionCrashBets)

	bets, err := u.store.LoadCrashBets(ctx)
	if err != nil {
		return 0, err
	}

	_, dropped, err := u.pruneBets(ctx, bets)
	if err != nil {
		return 0, err
	}
	return dropped, nil
}
