package payment

import (
	"context"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
)

// RecordRelayedPayment admits a payment reported by the Telegram relay.
// The relay is trusted as a backend-to-backend caller: no independent proof
// of payment is obtained, only field validation and duplicate detection by
// transactionId. There is no freshness check on this channel; the relay
// reports payments it has already collected.
func (p *PaymentUseCase) RecordRelayedPayment(
	ctx context.Context,
	claim usecase.RelayedPaymentClaim,
) (*usecase.PaymentResult, error) {
	amount, err := validateRelayedClaim(claim)
	if err != nil {
		return nil, err
	}

	if err := p.locker.AcquireLock(ctx, persistence.CollectionPayments); err != nil {
		return nil, err
	}
	defer p.locker.ReleaseLock(persistence.CollectionPayments)

	payments, err := p.store.LoadPayments(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := claim.Timestamp
	if timestamp == 0 {
		timestamp = p.timeProvider.NowUnixMilli()
	}
	record := entity.PaymentRecord{
		ID:            entity.NewRecordID(),
		UserID:        claim.UserID,
		Amount:        claim.Amount,
		TransactionID: claim.TransactionID,
		PaymentHash:   claim.PaymentHash,
		Timestamp:     timestamp,
		Verified:      true,
		Type:          entity.PaymentTypeTelegram,
	}

	if dup := findDuplicate(payments, record); dup != nil {
		p.logger.Info("Duplicate relayed payment ignored", map[string]any{
			"userId":        claim.UserID,
			"transactionId": claim.TransactionID,
			"existingId":    dup.ID,
		})
		return nil, errs.NewDuplicatePaymentError(string(record.Type), claim.UserID, record.CorrelationKey())
	}

	return p.admit(ctx, payments, record, amount)
}

// validateRelayedClaim checks the required fields of a bot-relayed claim.
func validateRelayedClaim(claim usecase.RelayedPaymentClaim) (entity.Amount, error) {
	channel := string(entity.PaymentTypeTelegram)
	if claim.UserID == "" {
		return 0, errs.NewClaimError(channel, claim.UserID, "userId", errs.ErrInvalidClaim)
	}
	if claim.Amount <= 0 {
		return 0, errs.NewClaimError(channel, claim.UserID, "amount", errs.ErrInvalidClaim)
	}
	if claim.TransactionID == "" {
		return 0, errs.NewClaimError(channel, claim.UserID, "transactionId", errs.ErrInvalidClaim)
	}
	amount, err := entity.AmountFromFloat(claim.Amount)
	if err != nil {
		return 0, errs.NewClaimError(channel, claim.UserID, "amount", err)
	}
	return amount, nil
}
