package usecase

import (
	"context"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
)

// AccountUseCase defines account reads and the two balance write paths: the
// general field upsert used by the client, and the ledger credit used by the
// payment pipeline. The credit is the only way a payment mutates a balance.
type AccountUseCase interface {
	// GetAccount returns the stored account, or the default account for an
	// identifier that was never written. The default is not persisted.
	GetAccount(ctx context.Context, userID string) (*entity.UserAccount, error)

	// UpsertAccount shallow-merges the given fields onto the stored account
	// (or the default) and persists the result, stamping updatedAt.
	//
	// Possible errors:
	// - ErrValidation: balance is non-numeric/negative, or inventory is not an array
	// - ErrStore: the write failed
	UpsertAccount(ctx context.Context, userID string, fields map[string]any) (*entity.UserAccount, error)

	// Credit adds the amount to the account balance and persists it, creating
	// the account from the default factory when absent. The whole
	// load-modify-save cycle runs under the users lock. Returns the new balance.
	//
	// Possible errors:
	// - ErrNegativeAmount / ErrInvalidAmount: the delta is not a valid credit
	// - ErrStore: the write failed (no credit took place)
	Credit(ctx context.Context, userID string, amount entity.Amount) (entity.Amount, error)
}
