package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/tonarcade/casino-backend/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// Amount is a monetary value stored in cents to avoid floating point precision
// issues. It marshals to the canonical two-decimal string used in the persisted
// JSON documents ("100.00") and unmarshals leniently: strings, numbers and
// garbage values are all accepted, with anything unparseable treated as zero
// so a corrupt balance degrades to 0 instead of poisoning every later
// operation on the account.
type Amount int64

// ParseAmount validates and converts a caller-supplied string amount.
// Uses a string-based approach to handle decimal places:
// - If no decimal point: adds ".00" and removes the point to get an integer
// - If one digit after decimal: adds a "0" and removes the point
// - If two digits after decimal: just removes the point
// Negative values and more than two decimal places are rejected.
func ParseAmount(amount string) (Amount, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		// No decimal point - add ".00"
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			// Like "10." - add "00"
			integerValue = parts[0] + "00"
		case 1:
			// One digit after decimal - add one zero
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			// Two digits after decimal - use as is
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return Amount(value), nil
}

// AmountFromFloat converts a float amount (e.g. a JSON number from a payment
// claim) to cents, rounding to the nearest cent. NaN, infinities and negative
// values are rejected.
func AmountFromFloat(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: value is not a finite number", errs.ErrInvalidAmount)
	}
	if f < 0 {
		return 0, errs.ErrNegativeAmount
	}

	cents := math.Round(f * 100)
	if cents > math.MaxInt64 {
		return 0, errs.ErrAmountOverflow
	}
	return Amount(cents), nil
}

// parseAmountLenient mirrors the parseFloat-or-zero read semantics of the
// persisted documents: any value that does not parse as a number becomes 0.
func parseAmountLenient(s string) Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Amount(math.Round(f * 100))
}

// Add returns the sum of two amounts.
func (a Amount) Add(delta Amount) Amount {
	return a + delta
}

// Float returns the amount as a float64 in whole currency units.
func (a Amount) Float() float64 {
	return float64(a) / 100
}

// String formats the amount with exactly two decimal places, e.g. 1015 -> "10.15".
func (a Amount) String() string {
	cents := int64(a)
	isNegative := cents < 0
	if isNegative {
		cents = -cents
	}

	s := strconv.FormatInt(cents, 10)
	for len(s) < 3 {
		s = "0" + s
	}

	decimalPos := len(s) - 2
	formatted := s[:decimalPos] + "." + s[decimalPos:]
	if isNegative {
		return "-" + formatted
	}
	return formatted
}

// MarshalJSON encodes the amount as its canonical two-decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a string, a number, or anything else (treated as 0).
func (a *Amount) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*a = parseAmountLenient(asString)
		return nil
	}

	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		if math.IsNaN(asNumber) || math.IsInf(asNumber, 0) {
			*a = 0
			return nil
		}
		*a = Amount(math.Round(asNumber * 100))
		return nil
	}

	*a = 0
	return nil
}
