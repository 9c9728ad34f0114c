package output

import (
	"fmt"

	"github.com/naijatax/paye/internal/domain"
)

// RegimeHeadline names the act and effective date a report was computed under
func RegimeHeadline(rules domain.PAYERules) string {
	return fmt.Sprintf("%s (Effective %s)", rules.Metadata.Act, rules.Metadata.EffectiveDate)
}

// Disclaimer is rendered at the foot of every human-readable report.
// The tax-free sentence follows the active band table.
func Disclaimer(rules domain.PAYERules) string {
	text := "This calculation is for informational purposes only and does not constitute official tax filing. "
	if len(rules.Bands) > 0 && rules.Bands[0].Rate.IsZero() && !rules.Bands[0].Width.Unbounded {
		text += fmt.Sprintf("The first %s of taxable income is tax-free under this regime. ", FormatNaira(rules.Bands[0].Width.Limit))
	} else {
		text += fmt.Sprintf("Taxable income is gross income less the Consolidated Relief Allowance of the higher of %s or %s of gross income, plus %s of gross income. ",
			FormatNaira(rules.CRA.Floor), FormatRate(rules.CRA.FloorGrossRate), FormatRate(rules.CRA.GrossRate))
	}
	text += fmt.Sprintf("Rent Relief is calculated as the lower of %s or %s of rent paid. ",
		FormatNaira(rules.Deductions.RentReliefCap), FormatRate(rules.Deductions.RentReliefRate))
	text += "Please consult with a qualified tax professional for official tax compliance."
	return text
}

// Assumptions lists the regime parameters rendered in detailed outputs
func Assumptions(rules domain.PAYERules) []string {
	out := []string{
		fmt.Sprintf("Consolidated Relief Allowance: max(%s, %s of gross) + %s of gross",
			FormatNaira(rules.CRA.Floor), FormatRate(rules.CRA.FloorGrossRate), FormatRate(rules.CRA.GrossRate)),
	}
	for i, b := range rules.Bands {
		width := "remaining income"
		if !b.Width.Unbounded {
			width = FormatNaira(b.Width.Limit)
		}
		out = append(out, fmt.Sprintf("Band %d: %s at %s", i+1, width, FormatRate(b.Rate)))
	}
	out = append(out,
		"Pension, NHIS and rent relief are informational and do not reduce taxable income",
		"Monthly tax is annual tax divided by 12",
	)
	return out
}
