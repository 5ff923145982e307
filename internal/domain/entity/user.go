package entity

import (
	"encoding/json"
	"fmt"

	errs "github.com/tonarcade/casino-backend/internal/domain/error"
)

// DefaultBalance is the starting balance granted to every account the first
// time it is observed, in cents.
const DefaultBalance Amount = 10000 // 100.00

// UserAccount represents a player account. Accounts are created lazily: any
// user identifier is valid, and reading an unknown one yields the default
// account without persisting it. Besides the known fields, clients may attach
// arbitrary extra fields which are stored and returned verbatim.
type UserAccount struct {
	UserID    string
	Balance   Amount
	Inventory []any
	UpdatedAt int64 // unix millis, 0 when the account was never written

	// Extra holds client-supplied fields outside the core schema.
	Extra map[string]any
}

// NewDefaultAccount is the single factory for first-access accounts.
// Every code path that needs an account for an unknown identifier goes
// through here so the defaults cannot drift apart.
func NewDefaultAccount(userID string) *UserAccount {
	return &UserAccount{
		UserID:    userID,
		Balance:   DefaultBalance,
		Inventory: []any{},
	}
}

// ApplyFields shallow-merges caller-supplied fields onto the account,
// validating the core fields. A supplied balance must be a non-negative
// number (or numeric string), a supplied inventory must be an array.
// The userId and updatedAt fields are server-owned and ignored.
func (u *UserAccount) ApplyFields(fields map[string]any) error {
	for key, value := range fields {
		switch key {
		case "balance":
			balance, err := coerceBalance(value)
			if err != nil {
				return err
			}
			u.Balance = balance
		case "inventory":
			items, ok := value.([]any)
			if !ok {
				return fmt.Errorf("%w: inventory must be an array", errs.ErrValidation)
			}
			u.Inventory = items
		case "userId", "updatedAt":
			// Server-owned fields.
		default:
			if u.Extra == nil {
				u.Extra = make(map[string]any)
			}
			u.Extra[key] = value
		}
	}
	return nil
}

// coerceBalance accepts the JSON representations a client may send for a
// balance and rejects anything non-numeric or negative.
func coerceBalance(value any) (Amount, error) {
	switch v := value.(type) {
	case float64:
		amount, err := AmountFromFloat(v)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid balance value", errs.ErrValidation)
		}
		return amount, nil
	case string:
		amount, err := ParseAmount(v)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid balance value", errs.ErrValidation)
		}
		return amount, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: invalid balance value", errs.ErrValidation)
		}
		return coerceBalance(f)
	default:
		return 0, fmt.Errorf("%w: invalid balance value", errs.ErrValidation)
	}
}

// MarshalJSON flattens the extra fields next to the core schema, preserving
// the on-disk document shape.
func (u UserAccount) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(u.Extra)+4)
	for k, v := range u.Extra {
		doc[k] = v
	}
	doc["balance"] = u.Balance
	if u.Inventory != nil {
		doc["inventory"] = u.Inventory
	} else {
		doc["inventory"] = []any{}
	}
	if u.UserID != "" {
		doc["userId"] = u.UserID
	}
	if u.UpdatedAt != 0 {
		doc["updatedAt"] = u.UpdatedAt
	}
	return json.Marshal(doc)
}

// UnmarshalJSON splits the document back into core and extra fields.
func (u *UserAccount) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*u = UserAccount{}
	for key, raw := range doc {
		switch key {
		case "balance":
			// Amount unmarshals leniently, corrupt values become 0.
			_ = u.Balance.UnmarshalJSON(raw)
		case "inventory":
			var items []any
			if err := json.Unmarshal(raw, &items); err == nil {
				u.Inventory = items
			}
		case "userId":
			_ = json.Unmarshal(raw, &u.UserID)
		case "updatedAt":
			_ = json.Unmarshal(raw, &u.UpdatedAt)
		default:
			var value any
			if err := json.Unmarshal(raw, &value); err != nil {
				return err
			}
			if u.Extra == nil {
				u.Extra = make(map[string]any)
			}
			u.Extra[key] = value
		}
	}
	if u.Inventory == nil {
		u.Inventory = []any{}
	}
	return nil
}
