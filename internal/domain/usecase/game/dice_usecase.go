package game

import (
	"context"
	"sort"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
	"github.com/tonarcade/casino-backend/internal/domain/usecase/retention"
)

// DiceUseCase records dice outcomes and serves the windowed history and
// per-user statistics. Outcomes arrive as already-computed facts; this use
// case never judges them, only stores and aggregates.
type DiceUseCase struct {
	store        persistence.SnapshotStore
	locker       persistence.CollectionLocker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewDiceUseCase creates a new dice use case instance
func NewDiceUseCase(
	store persistence.SnapshotStore,
	locker persistence.CollectionLocker,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.DiceUseCase {
	return &DiceUseCase{
		store:        store,
		locker:       locker,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// diceTimestamp extracts the pruning timestamp; a missing timestamp is 0 and
// therefore always stale.
func diceTimestamp(game entity.DiceGame) int64 {
	return game.Timestamp
}

// pruneGames applies the retention window and persists the pruned list when
// anything was dropped. Callers must hold the dice games lock.
func (u *DiceUseCase) pruneGames(ctx context.Context, games []entity.DiceGame) ([]entity.DiceGame, error) {
	now := u.timeProvider.NowUnixMilli()
	kept, dropped := retention.PruneByAge(games, now, retention.DiceGameWindow, diceTimestamp)
	if dropped == 0 {
		return kept, nil
	}

	if err := u.store.SaveDiceGames(ctx, kept); err != nil {
		return nil, err
	}
	u.logger.Debug("Pruned stale dice games", map[string]any{
		"dropped":   dropped,
		"remaining": len(kept),
	})
	return kept, nil
}

// ListGames returns up to limit games inside the retention window, newest
// first. Pruning happens lazily on this read path.
func (u *DiceUseCase) ListGames(ctx context.Context, limit int) ([]entity.DiceGame, error) {
	if err := u.locker.AcquireLock(ctx, persistence.CollectionDiceGames); err != nil {
		return nil, err
	}
	defer u.locker.ReleaseLock(persistence.CollectionDiceGames)

	games, err := u.store.LoadDiceGames(ctx)
	if err != nil {
		return nil, err
	}

	kept, err := u.pruneGames(ctx, games)
	if err != nil {
		return nil, err
	}

	sorted := make([]entity.DiceGame, len(kept))
	copy(sorted, kept)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}
