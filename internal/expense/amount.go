package expense

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount a single expense may record.
var MaxAmount = decimal.RequireFromString("999999.99")

const amountPlaces = 2

// MaxAmountLength bounds the raw amount input. Only plain decimal notation is
// accepted.
const MaxAmountLength = 32

var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

var (
	errAmountInvalid  = errors.New("amount invalid")
	errAmountTooLarge = errors.New("amount too large")
)

// ParseAmount parses a plain decimal string such as "12.5", rejects negative values and values
// above MaxAmount, and rounds the result to two decimal places.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxAmountLength || !amountPattern.MatchString(s) {
		return decimal.Decimal{}, errAmountInvalid
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errAmountInvalid
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, errAmountInvalid
	}

	amount = amount.Round(amountPlaces)
	if amount.GreaterThan(MaxAmount) {
		return decimal.Decimal{}, errAmountTooLarge
	}
	return amount, nil
}

// AmountToCents converts a normalized amount to integer cents.
func AmountToCents(amount decimal.Decimal) int64 {
	return amount.Shift(amountPlaces).Round(0).IntPart()
}

// AmountFromCents converts integer cents back to a two-place amount.
func AmountFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -amountPlaces)
}

// FormatAmount renders an amount with exactly two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(amountPlaces)
}
