package user

import (
	"context"
	"fmt"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

// UpsertAccount shallow-merges caller-supplied fields onto the stored account
// (or the default for a new identifier), stamps updatedAt and persists the
// full user mapping. The merge runs under the users lock so concurrent
// upserts cannot lose each other's fields.
func (u *AccountUseCase) UpsertAccount(
	ctx context.Context,
	userID string,
	fields map[string]any,
) (*entity.UserAccount, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", errs.ErrValidation)
	}

	if err := u.locker.AcquireLock(ctx, persistence.CollectionUsers); err != nil {
		return nil, err
	}
	defer u.locker.ReleaseLock(persistence.CollectionUsers)

	users, err := u.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	account, ok := users[userID]
	if !ok {
		account = entity.NewDefaultAccount(userID)
	}
	account.UserID = userID

	if err := account.ApplyFields(fields); err != nil {
		u.logger.Warn("Rejected account update", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	account.UpdatedAt = u.timeProvider.NowUnixMilli()

	users[userID] = account
	if err := u.store.SaveUsers(ctx, users); err != nil {
		return nil, err
	}

	u.logger.Info("Account saved", map[string]any{
		"userId":  userID,
		"balance": account.Balance.String(),
	})
	return account, nil
}
