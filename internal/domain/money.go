package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of fractional digits kept for every stored amount.
const AmountPlaces = 2

// Magnitude limits for any amount the wallet accepts or stores
const (
	MaxAmountIntegerDigits = 15
	maxAmountScale         = 32
	maxAmountInputLength   = 64
)

// RoundAmount rounds d to two fractional digits (half away from zero).
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// FormatAmount renders d with exactly two fractional digits, the persisted representation.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountPlaces)
}

// ParseAmount parses user input into a decimal amount.
// Empty and non-numeric input yield ErrInvalidAmount. The sign is not checked here.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	if len(s) > maxAmountInputLength || strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %q is not a plain decimal number", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if err := CheckAmountRange(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// CheckAmountRange returns ErrInvalidAmount when d has more than
// MaxAmountIntegerDigits integer digits or an extreme fractional scale.
// Only the coefficient and exponent are inspected.
func CheckAmountRange(d decimal.Decimal) error {
	exp := int64(d.Exponent())
	if int64(d.NumDigits())+exp > MaxAmountIntegerDigits {
		return fmt.Errorf("%w: more than %d integer digits", ErrInvalidAmount, MaxAmountIntegerDigits)
	}
	if exp < -maxAmountScale {
		return fmt.Errorf("%w: more than %d fractional digits", ErrInvalidAmount, maxAmountScale)
	}
	return nil
}

// ValidateAmount checks that amount is strictly positive once rounded to two digits
// and returns the rounded value.
func ValidateAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := CheckAmountRange(amount); err != nil {
		return decimal.Zero, err
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	rounded := RoundAmount(amount)
	if rounded.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: rounds to zero", ErrInvalidAmount)
	}
	return rounded, nil
}
