package user

import (
	"context"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
)

// AccountUseCase implements the account business logic, including the balance
// ledger. It is the sole writer of the users collection.
type AccountUseCase struct {
	store        persistence.SnapshotStore
	locker       persistence.CollectionLocker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountUseCase creates a new account use case instance
func NewAccountUseCase(
	store persistence.SnapshotStore,
	locker persistence.CollectionLocker,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AccountUseCase {
	return &AccountUseCase{
		store:        store,
		locker:       locker,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetAccount returns the stored account, or the lazily-created default for an
// identifier that was never written. The default is returned without being
// persisted: every identifier is valid before its first write.
func (u *AccountUseCase) GetAccount(ctx context.Context, userID string) (*entity.UserAccount, error) {
	users, err := u.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	if account, ok := users[userID]; ok {
		account.UserID = userID
		return account, nil
	}

	u.logger.Debug("Serving default account for unknown user", map[string]any{
		"userId": userID,
	})
	return entity.NewDefaultAccount(userID), nil
}
