package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/tonarcade/casino-backend/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("should parse whole number", func(t *testing.T) {
		amount, err := ParseAmount("100")
		assert.NoError(t, err)
		assert.Equal(t, Amount(10000), amount)
	})

	t.Run("should parse one decimal place", func(t *testing.T) {
		amount, err := ParseAmount("10.5")
		assert.NoError(t, err)
		assert.Equal(t, Amount(1050), amount)
	})

	t.Run("should parse two decimal places", func(t *testing.T) {
		amount, err := ParseAmount("10.15")
		assert.NoError(t, err)
		assert.Equal(t, Amount(1015), amount)
	})

	t.Run("should parse trailing decimal point", func(t *testing.T) {
		amount, err := ParseAmount("10.")
		assert.NoError(t, err)
		assert.Equal(t, Amount(1000), amount)
	})

	t.Run("should reject negative values", func(t *testing.T) {
		_, err := ParseAmount("-5")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("should reject more than two decimal places", func(t *testing.T) {
		_, err := ParseAmount("10.155")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject non-numeric input", func(t *testing.T) {
		_, err := ParseAmount("abc")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := ParseAmount("")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestAmountFromFloat(t *testing.T) {
	t.Run("should convert and round to cents", func(t *testing.T) {
		amount, err := AmountFromFloat(10.155)
		assert.NoError(t, err)
		assert.Equal(t, Amount(1016), amount)
	})

	t.Run("should reject negative values", func(t *testing.T) {
		_, err := AmountFromFloat(-1)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("should reject NaN", func(t *testing.T) {
		nan := 0.0
		nan = nan / nan
		_, err := AmountFromFloat(nan)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestAmountString(t *testing.T) {
	tests := []struct {
		name     string
		amount   Amount
		expected string
	}{
		{"whole units", 10000, "100.00"},
		{"with cents", 1015, "10.15"},
		{"less than one unit", 5, "0.05"},
		{"zero", 0, "0.00"},
		{"negative", -1050, "-10.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.String())
		})
	}
}

func TestAmountJSON(t *testing.T) {
	t.Run("should marshal to canonical string", func(t *testing.T) {
		data, err := json.Marshal(Amount(10000))
		assert.NoError(t, err)
		assert.Equal(t, `"100.00"`, string(data))
	})

	t.Run("should unmarshal a string amount", func(t *testing.T) {
		var amount Amount
		assert.NoError(t, json.Unmarshal([]byte(`"100.00"`), &amount))
		assert.Equal(t, Amount(10000), amount)
	})

	t.Run("should unmarshal a number amount", func(t *testing.T) {
		var amount Amount
		assert.NoError(t, json.Unmarshal([]byte(`100.5`), &amount))
		assert.Equal(t, Amount(10050), amount)
	})

	t.Run("should degrade garbage to zero", func(t *testing.T) {
		var amount Amount
		assert.NoError(t, json.Unmarshal([]byte(`"not-a-number"`), &amount))
		assert.Equal(t, Amount(0), amount)
	})

	t.Run("should degrade non-scalar values to zero", func(t *testing.T) {
		var amount Amount
		assert.NoError(t, json.Unmarshal([]byte(`{"nested":true}`), &amount))
		assert.Equal(t, Amount(0), amount)
	})
}
