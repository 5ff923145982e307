package game

import (
	"context"
	"fmt"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/usecase/retention"
)

// Stats aggregates the user's dice games inside the retention window: total
// games, wins, losses (not-won), winnings summed over won games, and the sum
// of all bet amounts. Pure read-side reduction: stale games are filtered out
// of the computation but the collection is not rewritten here.
func (u *DiceUseCase) Stats(ctx context.Context, userID string) (*entity.DiceStats, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", errs.ErrValidation)
	}

	games, err := u.store.LoadDiceGames(ctx)
	if err != nil {
		return nil, err
	}

	now := u.timeProvider.NowUnixMilli()
	windowed, _ := retention.PruneByAge(games, now, retention.DiceGameWindow, diceTimestamp)

	stats := entity.ComputeDiceStats(windowed, userID)
	return &stats, nil
}
