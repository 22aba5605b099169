package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidNumber is wrapped by every parse failure in this file.
var ErrInvalidNumber = errors.New("invalid number")

var hundred = decimal.NewFromInt(100)

// ParseCount parses a non-negative integer such as a number of years.
func ParseCount(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidNumber, trimmed)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d must not be negative", ErrInvalidNumber, n)
	}
	return n, nil
}

// ParseAmount parses a real number. Underscore digit separators are accepted;
// NaN and Inf are not.
func ParseAmount(s string) (float64, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// ParsePercent parses a percentage and returns it as a fraction: "10" -> 0.10.
func ParsePercent(s string) (float64, error) {
	d, err := parseDecimal(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return 0, err
	}
	return d.Div(hundred).InexactFloat64(), nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	cleaned := strings.ReplaceAll(trimmed, "_", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, trimmed)
	}
	return d, nil
}
