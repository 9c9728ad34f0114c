package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Declaration",
		"Type",
		"Gross Income",
		"Annual Tax",
		"Monthly Tax",
		"Effective Rate %",
		"Net Annual Income",
		"Gross Diff from Base",
		"Tax Diff from Base",
		"Net Diff from Base",
		"Net % Change",
		"Marginal Rate %",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, rowType string) []string {
	marginal := ""
	if result.HasMarginalRate {
		marginal = result.MarginalRatePercent.StringFixed(2)
	}
	return []string{
		result.DeclarationName,
		rowType,
		result.GrossIncome.StringFixed(2),
		result.AnnualTax.StringFixed(2),
		result.MonthlyTax.StringFixed(2),
		result.EffectiveRatePercent.StringFixed(2),
		result.NetAnnualIncome.StringFixed(2),
		result.GrossDiffFromBase.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
		result.NetDiffFromBase.StringFixed(2),
		result.NetPctFromBase.StringFixed(2),
		marginal,
	}
}
