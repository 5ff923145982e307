package entity

import (
	"encoding/json"
	"fmt"

	errs "github.com/tonarcade/casino-backend/internal/domain/error"
)

// BetStatus is the explicit lifecycle state of a crash bet. The bet identifier
// is the stable key across the whole lifecycle: the same id is submitted once
// at placement and again at cash-out.
type BetStatus string

const (
	// BetStatusPlaced marks a bet that is riding the current round.
	BetStatusPlaced BetStatus = "placed"
	// BetStatusCashedOut marks a bet whose player cashed out. Terminal.
	BetStatusCashedOut BetStatus = "cashed_out"
)

// CrashBet is one bet in the crash game. Besides the lifecycle fields, clients
// attach arbitrary fields (stake, multiplier, player name, ...) which are
// merged shallowly on upsert and round-tripped verbatim.
type CrashBet struct {
	ID          string
	Status      BetStatus
	Timestamp   int64 // unix millis of placement
	CashOutTime int64 // unix millis, 0 until cashed out

	// Extra holds the client-supplied bet fields outside the core schema.
	Extra map[string]any
}

// EffectiveTimestamp is the timestamp used for age-based pruning: the
// placement time, falling back to the cash-out time when placement was never
// stamped.
func (b CrashBet) EffectiveTimestamp() int64 {
	if b.Timestamp != 0 {
		return b.Timestamp
	}
	return b.CashOutTime
}

// Transition moves the bet to the given status. Cashed-out is terminal: a
// later submission cannot move the bet back to placed.
func (b *CrashBet) Transition(to BetStatus) error {
	switch to {
	case BetStatusPlaced, BetStatusCashedOut:
	default:
		return fmt.Errorf("%w: unknown bet status %q", errs.ErrValidation, to)
	}
	if b.Status == BetStatusCashedOut && to == BetStatusPlaced {
		return fmt.Errorf("%w: bet %s is already cashed out", errs.ErrInvalidTransition, b.ID)
	}
	b.Status = to
	return nil
}

// Merge shallow-merges an incoming submission for the same bet id onto the
// existing record. The original placement timestamp is kept unless the
// incoming bet supplies one. Returns an error when the incoming submission
// attempts an invalid lifecycle transition.
func (b *CrashBet) Merge(incoming CrashBet) error {
	if incoming.ID != b.ID {
		return fmt.Errorf("%w: bet id mismatch", errs.ErrValidation)
	}

	for key, value := range incoming.Extra {
		if b.Extra == nil {
			b.Extra = make(map[string]any)
		}
		b.Extra[key] = value
	}
	if incoming.Timestamp != 0 {
		b.Timestamp = incoming.Timestamp
	}
	if incoming.CashOutTime != 0 {
		b.CashOutTime = incoming.CashOutTime
	}

	// A submission without a status is a plain field update: it keeps the
	// current lifecycle state rather than implying placed.
	if incoming.Status == "" {
		return nil
	}
	return b.Transition(incoming.Status)
}

// inferStatus tags a record as cashed out when its fields prove it. Records
// with neither a status nor cash-out markers stay untagged; they read as
// placed only when written out, so a status-less merge cannot demote an
// existing bet.
func (b *CrashBet) inferStatus() {
	if b.Status != "" {
		return
	}
	if b.CashOutTime != 0 {
		b.Status = BetStatusCashedOut
		return
	}
	if _, ok := b.Extra["cashOutMultiplier"]; ok {
		b.Status = BetStatusCashedOut
	}
}

// MarshalJSON flattens the extra fields next to the core schema.
func (b CrashBet) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(b.Extra)+4)
	for k, v := range b.Extra {
		doc[k] = v
	}
	doc["id"] = b.ID
	status := b.Status
	if status == "" {
		status = BetStatusPlaced
	}
	doc["status"] = status
	if b.Timestamp != 0 {
		doc["timestamp"] = b.Timestamp
	}
	if b.CashOutTime != 0 {
		doc["cashOutTime"] = b.CashOutTime
	}
	return json.Marshal(doc)
}

// UnmarshalJSON splits the document back into core and extra fields, tagging
// cashed-out records whose status field is absent.
func (b *CrashBet) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*b = CrashBet{}
	for key, raw := range doc {
		switch key {
		case "id":
			_ = json.Unmarshal(raw, &b.ID)
		case "status":
			_ = json.Unmarshal(raw, (*string)(&b.Status))
		case "timestamp":
			_ = json.Unmarshal(raw, &b.Timestamp)
		case "cashOutTime":
			_ = json.Unmarshal(raw, &b.CashOutTime)
		default:
			var value any
			if err := json.Unmarshal(raw, &value); err != nil {
				return err
			}
			if b.Extra == nil {
				b.Extra = make(map[string]any)
			}
			b.Extra[key] = value
		}
	}
	b.inferStatus()
	return nil
}
