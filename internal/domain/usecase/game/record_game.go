package game

import (
	"context"
	"fmt"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

// RecordGame appends a dice outcome. Outcomes are append-only: a game is a
// fact, never merged or updated. Timestamp and id are stamped server-side
// when the caller omits them, and the history is FIFO-capped.
func (u *DiceUseCase) RecordGame(ctx context.Context, game entity.DiceGame) (*entity.DiceGame, error) {
	if game.UserID == "" {
		return nil, fmt.Errorf("%w: missing required fields: userId, result, betAmount", errs.ErrValidation)
	}
	if game.BetAmount < 0 {
		return nil, fmt.Errorf("%w: invalid bet amount", errs.ErrValidation)
	}

	if err := u.locker.AcquireLock(ctx, persistence.CollectionDiceGames); err != nil {
		return nil, err
	}
	defer u.locker.ReleaseLock(persistence.CollectionDiceGames)

	games, err := u.store.LoadDiceGames(ctx)
	if err != nil {
		return nil, err
	}

	if game.Timestamp == 0 {
		game.Timestamp = u.timeProvider.NowUnixMilli()
	}
	if game.ID == "" {
		game.ID = entity.NewRecordID()
	}

	games = entity.AppendDiceGame(games, game)
	if err := u.store.SaveDiceGames(ctx, games); err != nil {
		return nil, err
	}

	u.logger.Info("Dice game recorded", map[string]any{
		"gameId": game.ID,
		"userId": game.UserID,
		"won":    game.Won,
	})
	return &game, nil
}
