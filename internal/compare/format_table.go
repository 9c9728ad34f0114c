package compare

import (
	"fmt"
	"strings"

	"github.com/naijatax/paye/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing declarations
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("PAYE DECLARATION COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 84) + "\n")
	sb.WriteString(fmt.Sprintf("Base Declaration: %s\n", compSet.BaseName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration:    %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 24
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Declaration",
		numWidth, "Gross",
		numWidth, "Annual Tax",
		numWidth, "Effective",
		numWidth, "Net Income"))
	sb.WriteString(strings.Repeat("-", 84) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 84) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 84) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 84) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.DeclarationName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}

			sb.WriteString(fmt.Sprintf("  Net Income:       %s%s (%s%%)\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				output.FormatNaira(alt.NetDiffFromBase),
				alt.NetPctFromBase.StringFixed(1)))

			if !alt.TaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Annual Tax:       %s%s\n",
					tf.deltaSymbol(alt.TaxDiffFromBase),
					output.FormatNaira(alt.TaxDiffFromBase)))
			}
			if !alt.EffectiveRateDiff.IsZero() {
				sb.WriteString(fmt.Sprintf("  Effective Rate:   %s%s points\n",
					tf.deltaSymbol(alt.EffectiveRateDiff),
					alt.EffectiveRateDiff.StringFixed(2)))
			}
			if alt.HasMarginalRate {
				sb.WriteString(fmt.Sprintf("  Marginal Rate:    %s on the gross difference\n",
					output.FormatPercent(alt.MarginalRatePercent, 1)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 84) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single declaration row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.DeclarationName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatShort(result.GrossIncome),
		numWidth, tf.formatShort(result.AnnualTax),
		numWidth, output.FormatPercent(result.EffectiveRatePercent, 2),
		numWidth, tf.formatShort(result.NetAnnualIncome))
}

// formatShort formats naira in thousands or millions
func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return "₦" + millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return "₦" + thousands.StringFixed(1) + "K"
	}
	return "₦" + d.StringFixed(0)
}

// deltaSymbol prefixes positive deltas; FormatNaira already signs negatives
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a compact single-line summary for each alternative
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		netChange := "="
		if !alt.NetDiffFromBase.IsZero() {
			netChange = tf.deltaSymbol(alt.NetDiffFromBase) + output.FormatNaira(alt.NetDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%s: %s net", alt.DeclarationName, netChange))
	}

	return sb.String()
}
