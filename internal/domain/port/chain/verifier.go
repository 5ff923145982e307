package chain

import (
	"context"
	"errors"
)

// Verification failure taxonomy. The payment pipeline maps all of these to an
// unverified rejection for the caller; the distinction exists for logs and for
// retry decisions (network failures are transient, the rest are final).
var (
	// ErrUnparseable is returned when the transaction payload is not a valid BOC
	ErrUnparseable = errors.New("transaction payload could not be parsed")

	// ErrWrongRecipient is returned when the transaction does not pay the
	// configured recipient address
	ErrWrongRecipient = errors.New("transaction recipient does not match")

	// ErrAmountMismatch is returned when the on-chain amount differs from the claim
	ErrAmountMismatch = errors.New("transaction amount does not match")

	// ErrTransactionNotFound is returned when the transaction is not present in
	// the recipient's confirmed transaction list
	ErrTransactionNotFound = errors.New("transaction not found on chain")

	// ErrNetwork is returned when every chain API source failed
	ErrNetwork = errors.New("chain API unreachable")
)

// VerifyRequest describes the on-chain payment to verify.
type VerifyRequest struct {
	// BOC is the base64-encoded bag-of-cells of the signed transfer.
	BOC string
	// Recipient is the address the payment must credit.
	Recipient string
	// Amount is the claimed amount in whole TON.
	Amount float64
	// SenderAddress optionally narrows the search to one sender wallet.
	SenderAddress string
}

// Verifier checks a payment claim against actual chain state. Implementations
// must be bounded: network lookups carry a per-attempt timeout and fall back
// across alternate API sources.
type Verifier interface {
	// VerifyTransaction returns nil when the claimed payment is confirmed on
	// chain with the expected recipient and amount.
	//
	// Possible errors:
	// - ErrUnparseable: the BOC payload is malformed
	// - ErrWrongRecipient: the payment credits a different address
	// - ErrAmountMismatch: the on-chain amount differs from the claim
	// - ErrTransactionNotFound: no matching confirmed transaction exists
	// - ErrNetwork: all chain API sources failed
	VerifyTransaction(ctx context.Context, req VerifyRequest) error
}

// IsFinal reports whether a verification failure is final, i.e. retrying the
// same claim cannot succeed.
func IsFinal(err error) bool {
	return errors.Is(err, ErrUnparseable) ||
		errors.Is(err, ErrWrongRecipient) ||
		errors.Is(err, ErrAmountMismatch)
}
