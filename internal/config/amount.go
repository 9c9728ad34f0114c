package config

import (
	"strings"

	"github.com/shopspring/decimal"
)

var amountStripper = strings.NewReplacer(",", "", "₦", "", "NGN", "", "ngn", "", " ", "", "\t", "", "_", "")

// ParseAmount turns user-typed money into a decimal. Malformed or negative
// input yields zero, so the result is always safe to feed to the engine.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := amountStripper.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
