package usecase

import (
	"context"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
)

// ChainPaymentClaim is an inbound assertion that an on-chain payment occurred.
type ChainPaymentClaim struct {
	UserID        string
	BOC           string
	Amount        float64
	Timestamp     int64 // unix millis; 0 means "just now"
	SenderAddress string
}

// RelayedPaymentClaim is a payment reported by the trusted Telegram relay.
// No independent proof is obtained for this channel: the relay is assumed to
// be a backend under our control.
type RelayedPaymentClaim struct {
	UserID        string
	Amount        float64
	TransactionID string
	PaymentHash   string
	Timestamp     int64
}

// ConfirmedPaymentQuery looks up a recently credited payment for polling
// clients. Amounts match within a small tolerance; only payments inside the
// freshness window are considered.
type ConfirmedPaymentQuery struct {
	UserID  string
	Amount  float64
	Type    entity.PaymentType
	Address string // tonkeeper channel only
}

// PaymentResult reports an accepted payment and the balance it produced.
type PaymentResult struct {
	Record     *entity.PaymentRecord
	NewBalance entity.Amount
}

// PaymentUseCase is the payment deduplication and crediting pipeline.
type PaymentUseCase interface {
	// VerifyChainPayment runs the full admit pipeline for an on-chain claim:
	// field validation, freshness, chain verification, duplicate detection,
	// then record + credit as one locked unit.
	//
	// Possible errors:
	// - ErrInvalidClaim: userId, boc or amount missing/invalid
	// - ErrStaleClaim: claim older than the freshness window
	// - ErrUnverified: the chain verifier rejected the claim
	// - ErrAlreadyProcessed: the same boc was already credited
	// - ErrStore: persisting failed (no credit took place)
	VerifyChainPayment(ctx context.Context, claim ChainPaymentClaim) (*PaymentResult, error)

	// RecordRelayedPayment admits a bot-relayed claim: field validation,
	// duplicate detection by transactionId, then record + credit.
	//
	// Possible errors:
	// - ErrInvalidClaim, ErrAlreadyProcessed, ErrStore (as above)
	RecordRelayedPayment(ctx context.Context, claim RelayedPaymentClaim) (*PaymentResult, error)

	// FindConfirmed returns the most recent verified payment matching the
	// query within the freshness window, or nil when none exists.
	FindConfirmed(ctx context.Context, query ConfirmedPaymentQuery) (*entity.PaymentRecord, error)
}
