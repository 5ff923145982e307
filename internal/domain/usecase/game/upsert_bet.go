package game

import (
	"context"
	"fmt"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

// UpsertBet inserts a new bet or merges the submission onto the existing bet
// with the same id. A new bet without a timestamp is stamped with the current
// time; a merge keeps the original placement timestamp unless the submission
// supplies one. The bet id is the stable key across the placed → cashed-out
// lifecycle, so a cash-out is just a second upsert of the same id.
func (u *CrashUseCase) UpsertBet(ctx context.Context, bet entity.CrashBet) (*entity.CrashBet, error) {
	if bet.ID == "" {
		return nil, fmt.Errorf("%w: bet ID is required", errs.ErrValidation)
	}

	if err := u.locker.AcquireLock(ctx, persistence.CollectionCrashBets); err != nil {
		return nil, err
	}
	defer u.locker.ReleaseLock(persistence.CollectionCrashBets)

	bets, err := u.store.LoadCrashBets(ctx)
	if err != nil {
		return nil, err
	}

	var result *entity.CrashBet
	for i := range bets {
		if bets[i].ID == bet.ID {
			if err := bets[i].Merge(bet); err != nil {
				u.logger.Warn("Rejected crash bet update", map[string]any{
					"betId": bet.ID,
					"error": err.Error(),
				})
				return nil, err
			}
			result = &bets[i]
			break
		}
	}

	if result == nil {
		if bet.Timestamp == 0 {
			bet.Timestamp = u.timeProvider.NowUnixMilli()
		}
		if bet.Status == "" {
			bet.Status = entity.BetStatusPlaced
		}
		bets = append(bets, bet)
		result = &bets[len(bets)-1]
	}

	if err := u.store.SaveCrashBets(ctx, bets); err != nil {
		return nil, err
	}

	u.logger.Info("Crash bet saved", map[string]any{
		"betId":  result.ID,
		"status": string(result.Status),
	})
	saved := *result
	return &saved, nil
}
