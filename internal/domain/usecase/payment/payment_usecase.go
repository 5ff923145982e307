// Package payment implements the payment deduplication and crediting
// pipeline. A claim is admitted exactly once per correlation key: the same
// boc (on-chain) or transactionId (bot-relayed) can never credit a balance
// twice, no matter how often it is submitted.
package payment

import (
	"context"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	chainport "github.com/tonarcade/casino-backend/internal/domain/port/chain"
	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
)

// PaymentUseCase implements the admit pipeline and the confirmed-payment
// queries. It owns the payments collection; balance mutation is delegated to
// the account ledger, which stays the sole writer of the users collection.
type PaymentUseCase struct {
	store        persistence.SnapshotStore
	locker       persistence.CollectionLocker
	accounts     usecase.AccountUseCase
	verifier     chainport.Verifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPaymentUseCase creates a new payment use case instance
func NewPaymentUseCase(
	store persistence.SnapshotStore,
	locker persistence.CollectionLocker,
	accounts usecase.AccountUseCase,
	verifier chainport.Verifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PaymentUseCase {
	return &PaymentUseCase{
		store:        store,
		locker:       locker,
		accounts:     accounts,
		verifier:     verifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// findDuplicate scans existing records for one that already credited the same
// payment. Only verified records of the same channel count.
func findDuplicate(payments []entity.PaymentRecord, candidate entity.PaymentRecord) *entity.PaymentRecord {
	for i := range payments {
		if candidate.IsDuplicateOf(payments[i]) {
			return &payments[i]
		}
	}
	return nil
}

// admit appends the record and credits the balance as one logical transaction.
// Callers must hold the payments lock. The record is persisted first; if the
// credit then fails, the payments snapshot is restored so a retried claim is
// not swallowed by its own half-written record.
func (p *PaymentUseCase) admit(
	ctx context.Context,
	payments []entity.PaymentRecord,
	record entity.PaymentRecord,
	amount entity.Amount,
) (*usecase.PaymentResult, error) {
	updated := entity.TrimPayments(append(payments, record))
	if err := p.store.SavePayments(ctx, updated); err != nil {
		return nil, err
	}

	newBalance, err := p.accounts.Credit(ctx, record.UserID, amount)
	if err != nil {
		// Roll the record back so the failed credit can be retried.
		if rbErr := p.store.SavePayments(ctx, payments); rbErr != nil {
			p.logger.Error("Failed to roll back payment record after credit failure", map[string]any{
				"paymentId": record.ID,
				"userId":    record.UserID,
				"error":     rbErr.Error(),
			})
		}
		return nil, err
	}

	p.logger.Info("Payment credited", map[string]any{
		"paymentId":  record.ID,
		"userId":     record.UserID,
		"channel":    string(record.Type),
		"amount":     amount.String(),
		"newBalance": newBalance.String(),
	})
	return &usecase.PaymentResult{
		Record:     &record,
		NewBalance: newBalance,
	}, nil
}
