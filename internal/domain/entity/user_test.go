package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/tonarcade/casino-backend/internal/domain/error"
)

func TestNewDefaultAccount(t *testing.T) {
	account := NewDefaultAccount("user-1")

	assert.Equal(t, "user-1", account.UserID)
	assert.Equal(t, DefaultBalance, account.Balance)
	assert.Equal(t, "100.00", account.Balance.String())
	assert.NotNil(t, account.Inventory)
	assert.Empty(t, account.Inventory)
	assert.Zero(t, account.UpdatedAt)
}

func TestUserAccount_ApplyFields(t *testing.T) {
	t.Run("should apply numeric balance", func(t *testing.T) {
		account := NewDefaultAccount("user-1")
		err := account.ApplyFields(map[string]any{"balance": 42.5})

		assert.NoError(t, err)
		assert.Equal(t, Amount(4250), account.Balance)
	})

	t.Run("should apply string balance", func(t *testing.T) {
		account := NewDefaultAccount("user-1")
		err := account.ApplyFields(map[string]any{"balance": "13.37"})

		assert.NoError(t, err)
		assert.Equal(t, Amount(1337), account.Balance)
	})

	t.Run("should reject negative balance", func(t *testing.T) {
		account := NewDefaultAccount("user-1")
		err := account.ApplyFields(map[string]any{"balance": -1.0})

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, DefaultBalance, account.Balance)
	})

	t.Run("should reject non-numeric balance", func(t *testing.T) {
		account := NewDefaultAccount("user-1")
		err := account.ApplyFields(map[string]any{"balance": true})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject non-array inventory", func(t *testing.T) {
		account := NewDefaultAccount("user-1")
		err := account.ApplyFields(map[string]any{"inventory": "sword"})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should replace inventory with supplied array", func(t *testing.T) {
		account := NewDefaultAccount("user-1")
		err := account.ApplyFields(map[string]any{"inventory": []any{"sword", "shield"}})

		assert.NoError(t, err)
		assert.Equal(t, []any{"sword", "shield"}, account.Inventory)
	})

	t.Run("should ignore server-owned fields", func(t *testing.T) {
		account := NewDefaultAccount("user-1")
		err := account.ApplyFields(map[string]any{
			"userId":    "someone-else",
			"updatedAt": float64(123),
		})

		assert.NoError(t, err)
		assert.Equal(t, "user-1", account.UserID)
		assert.Zero(t, account.UpdatedAt)
	})

	t.Run("should keep unknown fields as extras", func(t *testing.T) {
		account := NewDefaultAccount("user-1")
		err := account.ApplyFields(map[string]any{
			"nickname": "ace",
			"level":    float64(7),
		})

		assert.NoError(t, err)
		assert.Equal(t, "ace", account.Extra["nickname"])
		assert.Equal(t, float64(7), account.Extra["level"])
	})
}

func TestUserAccount_JSON(t *testing.T) {
	t.Run("should flatten extras into the document", func(t *testing.T) {
		account := &UserAccount{
			UserID:    "user-1",
			Balance:   1337,
			Inventory: []any{"sword"},
			UpdatedAt: 1700000000000,
			Extra:     map[string]any{"nickname": "ace"},
		}

		data, err := json.Marshal(account)
		assert.NoError(t, err)

		var doc map[string]any
		assert.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "13.37", doc["balance"])
		assert.Equal(t, "ace", doc["nickname"])
		assert.Equal(t, "user-1", doc["userId"])
	})

	t.Run("should round trip through the document shape", func(t *testing.T) {
		original := &UserAccount{
			UserID:    "user-1",
			Balance:   1337,
			Inventory: []any{"sword"},
			UpdatedAt: 1700000000000,
			Extra:     map[string]any{"nickname": "ace"},
		}

		data, err := json.Marshal(original)
		assert.NoError(t, err)

		var decoded UserAccount
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original.UserID, decoded.UserID)
		assert.Equal(t, original.Balance, decoded.Balance)
		assert.Equal(t, original.Inventory, decoded.Inventory)
		assert.Equal(t, original.UpdatedAt, decoded.UpdatedAt)
		assert.Equal(t, original.Extra, decoded.Extra)
	})

	t.Run("should read corrupt balance as zero", func(t *testing.T) {
		var decoded UserAccount
		err := json.Unmarshal([]byte(`{"userId":"user-1","balance":"garbage"}`), &decoded)

		assert.NoError(t, err)
		assert.Equal(t, Amount(0), decoded.Balance)
		assert.NotNil(t, decoded.Inventory)
	})
}
