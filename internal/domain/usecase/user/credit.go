package user

import (
	"context"
	"fmt"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

// Credit adds the amount to the user's balance and persists the user mapping.
// Credits are additive only; there is no debit path in this ledger. The load,
// mutation and save run under the users lock: two concurrent credits to the
// same account must both land, not last-writer-win each other.
//
// A balance stored as garbage by an earlier corruption reads as 0 (the Amount
// codec is lenient), so the credit still produces a valid non-negative result.
func (u *AccountUseCase) Credit(
	ctx context.Context,
	userID string,
	amount entity.Amount,
) (entity.Amount, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: user ID is required", errs.ErrValidation)
	}
	if amount < 0 {
		return 0, errs.ErrNegativeAmount
	}

	if err := u.locker.AcquireLock(ctx, persistence.CollectionUsers); err != nil {
		return 0, err
	}
	defer u.locker.ReleaseLock(persistence.CollectionUsers)

	users, err := u.store.LoadUsers(ctx)
	if err != nil {
		return 0, err
	}

	account, ok := users[userID]
	if !ok {
		account = entity.NewDefaultAccount(userID)
	}
	account.UserID = userID

	newBalance := account.Balance.Add(amount)
	if newBalance < 0 {
		return 0, errs.ErrAmountOverflow
	}
	account.Balance = newBalance
	account.UpdatedAt = u.timeProvider.NowUnixMilli()

	users[userID] = account
	if err := u.store.SaveUsers(ctx, users); err != nil {
		u.logger.Error("Failed to persist credited balance", map[string]any{
			"userId": userID,
			"amount": amount.String(),
			"error":  err.Error(),
		})
		return 0, err
	}

	u.logger.Info("Balance credited", map[string]any{
		"userId":     userID,
		"amount":     amount.String(),
		"newBalance": newBalance.String(),
	})
	return newBalance, nil
}
