// Package toncenter verifies payment claims against the TON blockchain using
// the toncenter HTTP API, with fallback across mirror endpoints.
package toncenter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	chainport "github.com/tonarcade/casino-backend/internal/domain/port/chain"
	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
)

// bocMagic is the serialization prefix of every valid bag-of-cells payload.
var bocMagic = []byte{0xb5, 0xee, 0x9c, 0x72}

const (
	// nanotonsPerTON converts whole TON to the on-chain integer unit.
	nanotonsPerTON = 1e9

	// amountToleranceNano allows for rounding when comparing the claimed TON
	// amount against the on-chain nanoton value.
	amountToleranceNano = 1e7 // 0.01 TON

	// transactionLookupLimit bounds how far back in the recipient's history
	// the claimed transaction is searched for.
	transactionLookupLimit = 50
)

// Verifier implements chain.Verifier against the toncenter getTransactions
// endpoint. Each configured endpoint is tried in order with its own timeout;
// only when every endpoint fails is the claim reported as a network failure.
type Verifier struct {
	endpoints    []string
	recipient    string
	apiKey       string
	timeout      time.Duration
	client       *http.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewVerifier creates a toncenter-backed chain verifier. The recipient is the
// wallet address every verified payment must credit; claims cannot override it.
func NewVerifier(
	endpoints []string,
	recipient string,
	apiKey string,
	timeout time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Verifier {
	return &Verifier{
		endpoints:    endpoints,
		recipient:    recipient,
		apiKey:       apiKey,
		timeout:      timeout,
		client:       &http.Client{},
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// transactionsResponse is the subset of the toncenter getTransactions payload
// the verifier needs.
type transactionsResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	Result []struct {
		InMsg struct {
			Source      string `json:"source"`
			Destination string `json:"destination"`
			Value       string `json:"value"`
		} `json:"in_msg"`
	} `json:"result"`
}

// VerifyTransaction checks the claim against the recipient's confirmed
// transaction list.
func (v *Verifier) VerifyTransaction(ctx context.Context, req chainport.VerifyRequest) error {
	if err := validateBOC(req.BOC); err != nil {
		return err
	}

	recipient := req.Recipient
	if recipient == "" {
		recipient = v.recipient
	}

	var lastErr error
	for _, endpoint := range v.endpoints {
		resp, err := v.fetchTransactions(ctx, endpoint, recipient)
		if err != nil {
			v.logger.Warn("Chain API request failed, trying next endpoint", map[string]any{
				"endpoint": endpoint,
				"error":    err.Error(),
			})
			lastErr = err
			continue
		}
		return matchTransaction(resp, req, recipient)
	}

	return fmt.Errorf("%w: %v", chainport.ErrNetwork, lastErr)
}

// validateBOC checks that the payload is base64 and carries the bag-of-cells
// serialization magic.
func validateBOC(boc string) error {
	if boc == "" {
		return fmt.Errorf("%w: empty payload", chainport.ErrUnparseable)
	}
	raw, err := base64.StdEncoding.DecodeString(boc)
	if err != nil {
		return fmt.Errorf("%w: %v", chainport.ErrUnparseable, err)
	}
	if len(raw) < len(bocMagic)+2 {
		return fmt.Errorf("%w: payload too short", chainport.ErrUnparseable)
	}
	for i, b := range bocMagic {
		if raw[i] != b {
			return fmt.Errorf("%w: missing bag-of-cells prefix", chainport.ErrUnparseable)
		}
	}
	return nil
}

// fetchTransactions queries one endpoint for the recipient's recent
// transactions, bounded by the per-attempt timeout.
func (v *Verifier) fetchTransactions(ctx context.Context, endpoint, address string) (*transactionsResponse, error) {
	reqCtx, cancel := v.timeProvider.WithTimeout(ctx, v.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("address", address)
	query.Set("limit", strconv.Itoa(transactionLookupLimit))
	requestURL := endpoint + "/getTransactions?" + query.Encode()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	if v.apiKey != "" {
		httpReq.Header.Set("X-API-Key", v.apiKey)
	}

	httpResp, err := v.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", httpResp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	var parsed transactionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	if !parsed.OK {
		return nil, fmt.Errorf("chain API error: %s", parsed.Error)
	}
	return &parsed, nil
}

// matchTransaction searches the recipient's history for a transaction matching
// the claim. The search distinguishes "nothing from this sender at all" from
// "found, but paying a different destination" and "found, but the amount
// differs" so the caller can log a precise reason.
func matchTransaction(resp *transactionsResponse, req chainport.VerifyRequest, recipient string) error {
	claimedNano := req.Amount * nanotonsPerTON
	sawCandidate := false
	sawWrongDestination := false

	for _, tx := range resp.Result {
		if req.SenderAddress != "" && tx.InMsg.Source != req.SenderAddress {
			continue
		}
		if tx.InMsg.Destination != "" && tx.InMsg.Destination != recipient {
			sawWrongDestination = true
			continue
		}
		sawCandidate = true

		valueNano, err := strconv.ParseFloat(tx.InMsg.Value, 64)
		if err != nil {
			continue
		}
		if math.Abs(valueNano-claimedNano) <= amountToleranceNano {
			return nil
		}
	}

	if sawCandidate {
		return fmt.Errorf("%w: no transaction within tolerance of %.2f TON", chainport.ErrAmountMismatch, req.Amount)
	}
	if sawWrongDestination {
		return fmt.Errorf("%w: payment does not credit %s", chainport.ErrWrongRecipient, recipient)
	}
	if req.SenderAddress != "" {
		return fmt.Errorf("%w: no confirmed transaction from %s", chainport.ErrTransactionNotFound, req.SenderAddress)
	}
	return fmt.Errorf("%w: no matching confirmed transaction", chainport.ErrTransactionNotFound)
}
