package usecase

import (
	"context"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
)

// CrashUseCase reconciles crash bets by identifier across their lifecycle.
type CrashUseCase interface {
	// UpsertBet inserts a new bet or shallow-merges onto the bet with the same
	// id, preserving the original placement timestamp unless the submission
	// supplies one.
	//
	// Possible errors:
	// - ErrValidation: bet id missing
	// - ErrInvalidTransition: the submission would move a cashed-out bet back
	// - ErrStore: the write failed
	UpsertBet(ctx context.Context, bet entity.CrashBet) (*entity.CrashBet, error)

	// ListBets returns bets inside the retention window, pruning stale ones
	// and persisting the pruned list when anything was dropped.
	ListBets(ctx context.Context) ([]entity.CrashBet, error)

	// CleanBets prunes stale bets unconditionally and reports how many were
	// removed.
	CleanBets(ctx context.Context) (int, error)
}

// DiceUseCase records dice outcomes and serves their statistics.
type DiceUseCase interface {
	// RecordGame appends a dice outcome, stamping timestamp and id when absent.
	//
	// Possible errors:
	// - ErrValidation: userId, result or betAmount missing, or betAmount negative
	// - ErrStore: the write failed
	RecordGame(ctx context.Context, game entity.DiceGame) (*entity.DiceGame, error)

	// ListGames returns up to limit games inside the retention window, newest
	// first.
	ListGames(ctx context.Context, limit int) ([]entity.DiceGame, error)

	// Stats aggregates the user's games inside the retention window.
	Stats(ctx context.Context, userID string) (*entity.DiceStats, error)
}

// PrizeUseCase maintains the public prize feed.
type PrizeUseCase interface {
	// AddPrize appends a prize, stamping timestamp and id when absent.
	//
	// Possible errors:
	// - ErrValidation: name or value missing, or value negative
	// - ErrStore: the write failed
	AddPrize(ctx context.Context, prize entity.PrizeRecord) (*entity.PrizeRecord, error)

	// ListPrizes returns up to limit prizes, newest first.
	ListPrizes(ctx context.Context, limit int) ([]entity.PrizeRecord, error)
}
