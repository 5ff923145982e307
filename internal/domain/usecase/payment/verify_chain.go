package payment

import (
	"context"
	"fmt"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	chainport "github.com/tonarcade/casino-backend/internal/domain/port/chain"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
	"github.com/tonarcade/casino-backend/internal/domain/usecase/retention"
)

// VerifyChainPayment runs the admit pipeline for an on-chain claim, in order:
//
//  1. required fields (userId, boc, amount)
//  2. freshness: the claim must be younger than the payment window
//  3. chain verification through the verifier port
//  4. duplicate detection by boc among verified tonkeeper records
//  5. record + credit as one locked unit
//
// The expensive chain lookup runs before the payments lock is taken so a slow
// chain API cannot stall every other payment.
func (p *PaymentUseCase) VerifyChainPayment(
	ctx context.Context,
	claim usecase.ChainPaymentClaim,
) (*usecase.PaymentResult, error) {
	amount, err := validateChainClaim(claim)
	if err != nil {
		return nil, err
	}

	now := p.timeProvider.NowUnixMilli()
	claimedAt := claim.Timestamp
	if claimedAt == 0 {
		claimedAt = now
	}
	if now-claimedAt > retention.PaymentWindow.Milliseconds() {
		p.logger.Warn("Rejected stale payment claim", map[string]any{
			"userId":   claim.UserID,
			"ageMs":    now - claimedAt,
			"windowMs": retention.PaymentWindow.Milliseconds(),
		})
		return nil, errs.ErrStaleClaim
	}

	verifyReq := chainport.VerifyRequest{
		BOC:           claim.BOC,
		Amount:        claim.Amount,
		SenderAddress: claim.SenderAddress,
	}
	if err := p.verifier.VerifyTransaction(ctx, verifyReq); err != nil {
		p.logger.Warn("Chain verification failed", map[string]any{
			"userId": claim.UserID,
			"final":  chainport.IsFinal(err),
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrUnverified, err)
	}

	if err := p.locker.AcquireLock(ctx, persistence.CollectionPayments); err != nil {
		return nil, err
	}
	defer p.locker.ReleaseLock(persistence.CollectionPayments)

	payments, err := p.store.LoadPayments(ctx)
	if err != nil {
		return nil, err
	}

	record := entity.PaymentRecord{
		ID:        entity.NewRecordID(),
		UserID:    claim.UserID,
		Amount:    claim.Amount,
		BOC:       claim.BOC,
		Address:   claim.SenderAddress,
		Timestamp: claimedAt,
		Verified:  true,
		Type:      entity.PaymentTypeTonkeeper,
	}

	if dup := findDuplicate(payments, record); dup != nil {
		p.logger.Info("Duplicate chain payment ignored", map[string]any{
			"userId":     claim.UserID,
			"existingId": dup.ID,
		})
		return nil, errs.NewDuplicatePaymentError(string(record.Type), claim.UserID, record.CorrelationKey())
	}

	return p.admit(ctx, payments, record, amount)
}

// validateChainClaim checks the required fields of an on-chain claim.
func validateChainClaim(claim usecase.ChainPaymentClaim) (entity.Amount, error) {
	channel := string(entity.PaymentTypeTonkeeper)
	if claim.UserID == "" {
		return 0, errs.NewClaimError(channel, claim.UserID, "userId", errs.ErrInvalidClaim)
	}
	if claim.BOC == "" {
		return 0, errs.NewClaimError(channel, claim.UserID, "boc", errs.ErrInvalidClaim)
	}
	if claim.Amount <= 0 {
		return 0, errs.NewClaimError(channel, claim.UserID, "amount", errs.ErrInvalidClaim)
	}
	amount, err := entity.AmountFromFloat(claim.Amount)
	if err != nil {
		return 0, errs.NewClaimError(channel, claim.UserID, "amount", err)
	}
	return amount, nil
}
