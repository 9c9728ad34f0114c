package output

import (
	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	hundred = decimal.NewFromInt(100)
)

// FormatNaira renders an amount as whole naira with digit grouping,
// e.g. ₦1,234,567. Halves round away from zero.
func FormatNaira(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return printer.Sprintf("-₦%d", -n)
	}
	return printer.Sprintf("₦%d", n)
}

// FormatRate renders a fractional rate as a percentage without trailing
// zeros (0.07 -> 7%, 0.075 -> 7.5%)
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(hundred).String() + "%"
}

// FormatPercent renders a value that is already a percentage
func FormatPercent(percent decimal.Decimal, places int32) string {
	return percent.StringFixed(places) + "%"
}

// BandLabel names a breakdown row: tax-free first bands, the open-ended top
// band, and every other band by its width.
func BandLabel(b domain.TaxBandBreakdown) string {
	switch {
	case b.Rate.IsZero() && !b.BandWidth.Unbounded:
		return "First " + FormatNaira(b.BandWidth.Limit) + " (Tax-free)"
	case b.BandWidth.Unbounded:
		return "Balance (Top Rate)"
	default:
		return "Next " + FormatNaira(b.BandWidth.Limit)
	}
}
