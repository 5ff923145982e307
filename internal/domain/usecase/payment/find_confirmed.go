package payment

import (
	"context"
	"math"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/usecase"
	"github.com/tonarcade/casino-backend/internal/domain/usecase/retention"
)

// AmountTolerance is the maximum difference between a queried amount and a
// stored payment amount for them to be considered the same payment.
const AmountTolerance = 0.01

// FindConfirmed looks for a recently credited payment matching the query.
// It supports clients polling for a payment that was submitted out-of-band
// (e.g. confirmed by the relay while the client was waiting). Read-only: no
// lock, no mutation. Returns nil when no payment matches.
func (p *PaymentUseCase) FindConfirmed(
	ctx context.Context,
	query usecase.ConfirmedPaymentQuery,
) (*entity.PaymentRecord, error) {
	if query.UserID == "" {
		return nil, errs.NewClaimError(string(query.Type), query.UserID, "userId", errs.ErrInvalidClaim)
	}
	if query.Amount <= 0 {
		return nil, errs.NewClaimError(string(query.Type), query.UserID, "amount", errs.ErrInvalidClaim)
	}

	payments, err := p.store.LoadPayments(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := p.timeProvider.NowUnixMilli() - retention.PaymentWindow.Milliseconds()
	for i := range payments {
		record := payments[i]
		if !record.Verified ||
			record.Type != query.Type ||
			record.UserID != query.UserID ||
			record.Timestamp <= cutoff {
			continue
		}
		if query.Address != "" && record.Address != query.Address {
			continue
		}
		if math.Abs(record.Amount-query.Amount) >= AmountTolerance {
			continue
		}
		return &record, nil
	}
	return nil, nil
}
