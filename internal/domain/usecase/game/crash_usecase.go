// Package game implements the bet and game reconcilers: upsert-by-identifier
// for crash bets, append-only recording for dice outcomes.
package game

import (
	"context"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
	"github.com/tonarcade/casino-backend/internal/domain/usecase/retention"
)

// CrashUseCase reconciles crash bets across their placed → cashed-out
// lifecycle, keyed by the caller-supplied bet id.
type CrashUseCase struct {
	store        persistence.SnapshotStore
	locker       persistence.CollectionLocker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCrashUseCase creates a new crash bet use case instance
func NewCrashUseCase(
	store persistence.SnapshotStore,
	locker persistence.CollectionLocker,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.CrashUseCase {
	return &CrashUseCase{
		store:        store,
		locker:       locker,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// pruneBets applies the retention window and persists the pruned list when
// anything was dropped. Callers must hold the crash bets lock.
func (u *CrashUseCase) pruneBets(ctx context.Context, bets []entity.CrashBet) ([]entity.CrashBet, int, error) {
	now := u.timeProvider.NowUnixMilli()
	kept, dropped := retention.PruneByAge(bets, now, retention.CrashBetWindow, entity.CrashBet.EffectiveTimestamp)
	if dropped == 0 {
		return kept, 0, nil
	}

	if err := u.store.SaveCrashBets(ctx, kept); err != nil {
		return nil, 0, err
	}
	u.logger.Debug("Pruned stale crash bets", map[string]any{
		"dropped":   dropped,
		"remaining": len(kept),
	})
	return kept, dropped, nil
}
