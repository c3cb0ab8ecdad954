package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered amount. Currency codes and symbols,
// spaces and apostrophe thousand separators are ignored. When both a dot and
// a comma are present the last one is the decimal separator; a lone comma is
// a decimal separator.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, " ", "")
	for _, symbol := range []string{"CHF", "EUR", "USD", "GBP", "INR", "$", "€", "£", "₹"} {
		amount = strings.ReplaceAll(amount, symbol, "")
	}
	amount = strings.ReplaceAll(amount, "'", "")

	// "1,234.56" keeps the dot, "1.234,56" and "12,50" use the comma
	lastDot, lastComma := strings.LastIndex(amount, "."), strings.LastIndex(amount, ",")
	switch {
	case lastComma < 0:
	case lastDot > lastComma:
		amount = strings.ReplaceAll(amount, ",", "")
	default:
		amount = strings.ReplaceAll(amount, ".", "")
		amount = strings.ReplaceAll(amount, ",", ".")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", amountStr, err)
	}
	return dec, nil
}

// OptionalAmount parses amountStr and returns nil when it is empty or invalid.
func OptionalAmount(amountStr string) *float64 {
	if strings.TrimSpace(amountStr) == "" {
		return nil
	}
	dec, err := ParseAmount(amountStr)
	if err != nil {
		return nil
	}
	f := dec.InexactFloat64()
	return &f
}

// FormatAmount renders an optional amount with two decimals, or "" when absent.
func FormatAmount(amount *float64) string {
	if amount == nil {
		return ""
	}
	return decimal.NewFromFloat(*amount).StringFixed(2)
}
