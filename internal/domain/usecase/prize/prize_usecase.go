// Package prize maintains the public prize feed: an append-only,
// FIFO-capped list of recent wins shown to all players.
package prize

import (
	"context"
	"fmt"
	"sort"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
)

// PrizeUseCase implements the prize feed operations.
type PrizeUseCase struct {
	store        persistence.SnapshotStore
	locker       persistence.CollectionLocker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPrizeUseCase creates a new prize use case instance
func NewPrizeUseCase(
	store persistence.SnapshotStore,
	locker persistence.CollectionLocker,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PrizeUseCase {
	return &PrizeUseCase{
		store:        store,
		locker:       locker,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AddPrize validates and appends a prize. The cap evicts the oldest record by
// insertion order, not by timestamp: the feed is a rolling window of the last
// thousand submissions.
func (u *PrizeUseCase) AddPrize(ctx context.Context, prize entity.PrizeRecord) (*entity.PrizeRecord, error) {
	if prize.Name == "" {
		return nil, fmt.Errorf("%w: prize name and value are required", errs.ErrValidation)
	}
	if prize.Value < 0 {
		return nil, fmt.Errorf("%w: invalid prize value", errs.ErrValidation)
	}

	if err := u.locker.AcquireLock(ctx, persistence.CollectionPrizes); err != nil {
		return nil, err
	}
	defer u.locker.ReleaseLock(persistence.CollectionPrizes)

	prizes, err := u.store.LoadPrizes(ctx)
	if err != nil {
		return nil, err
	}

	if prize.Timestamp == 0 {
		prize.Timestamp = u.timeProvider.NowUnixMilli()
	}
	if prize.ID == "" {
		prize.ID = entity.NewRecordID()
	}

	prizes = entity.AppendPrize(prizes, prize)
	if err := u.store.SavePrizes(ctx, prizes); err != nil {
		return nil, err
	}

	u.logger.Info("Prize added", map[string]any{
		"prizeId": prize.ID,
		"name":    prize.Name,
		"value":   prize.Value,
	})
	return &prize, nil
}

// ListPrizes returns up to limit prizes, newest first by timestamp.
// Read-only: the prize feed has no age window, only the insertion cap.
func (u *PrizeUseCase) ListPrizes(ctx context.Context, limit int) ([]entity.PrizeRecord, error) {
	prizes, err := u.store.LoadPrizes(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]entity.PrizeRecord, len(prizes))
	copy(sorted, prizes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}
