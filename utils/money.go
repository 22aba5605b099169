package utils

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// RoundCents rounds v to two decimal places, half away from zero. v must be
// finite.
func RoundCents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FormatAmount formats v with thousands separators and two decimals,
// e.g. 1234567.891 -> "1,234,567.89". Non-finite values print as "inf",
// "-inf" and "nan"; a negative value that rounds to zero keeps its sign.
func FormatAmount(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}
	rounded := RoundCents(v)
	if rounded.IsZero() && math.Signbit(v) {
		return "-0.00"
	}
	return printer.Sprintf("%.2f", rounded.InexactFloat64())
}

func formatNonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "nan", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}

// FormatCurrency prefixes FormatAmount with symbol. The sign follows the
// symbol: "$-1,234.50".
func FormatCurrency(v float64, symbol string) string {
	return symbol + FormatAmount(v)
}

// FormatPercent formats a fractional rate as a percentage with 2 decimals,
// e.g. 0.0825 -> "8.25%".
func FormatPercent(rate float64) string {
	if s, ok := formatNonFinite(rate); ok {
		return s + "%"
	}
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
