// Package amount converts between human-readable decimal amounts ("1.5") and
// the integer base units the ledger works with, using arbitrary precision.
package amount

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrInvalidAmount is returned when a decimal amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrTooManyDecimals is returned when an amount has more fractional digits
	// than the asset supports.
	ErrTooManyDecimals = errors.New("amount has too many decimal places")
)

// ToBaseUnits converts a decimal string into base units for an asset with the
// given number of decimals, e.g. ToBaseUnits("1.5", 6) == 1500000.
func ToBaseUnits(value string, decimals uint8) (*big.Int, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	if strings.HasPrefix(value, "-") {
		return nil, fmt.Errorf("%w: amount cannot be negative", ErrInvalidAmount)
	}

	integerPart, fractionalPart, _ := strings.Cut(value, ".")
	if strings.Contains(fractionalPart, ".") {
		return nil, fmt.Errorf("%w: multiple decimal points in %q", ErrInvalidAmount, value)
	}

	if len(fractionalPart) > int(decimals) {
		return nil, fmt.Errorf("%w: %q (max %d)", ErrTooManyDecimals, value, decimals)
	}

	// "1.5" with 6 decimals -> "1" + "500000"
	digits := integerPart + fractionalPart + strings.Repeat("0", int(decimals)-len(fractionalPart))
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return new(big.Int), nil
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
		}
	}

	units, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	return units, nil
}

// FromBaseUnits renders base units as a decimal string with trailing zeros
// removed, e.g. FromBaseUnits(1500000, 6) == "1.5".
func FromBaseUnits(units *big.Int, decimals uint8) string {
	if units == nil {
		return "0"
	}

	sign := ""
	digits := units.String()
	if units.Sign() < 0 {
		sign, digits = "-", digits[1:]
	}

	if decimals == 0 {
		return sign + digits
	}

	if pad := int(decimals) + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	cut := len(digits) - int(decimals)
	integerPart, fractionalPart := digits[:cut], strings.TrimRight(digits[cut:], "0")
	if fractionalPart == "" {
		return sign + integerPart
	}

	return sign + integerPart + "." + fractionalPart
}

// Parse parses a base-unit integer string such as the amounts returned by the
// ledger ("1000000"). It accepts JSON numbers rendered as strings.
func Parse(value string) (*big.Int, error) {
	units, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	return units, nil
}

// Sum adds up values without modifying them.
func Sum(values ...*big.Int) *big.Int {
	total := new(big.Int)
	for _, v := range values {
		if v != nil {
			total.Add(total, v)
		}
	}
	return total
}
