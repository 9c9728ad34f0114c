package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/naijatax/paye/internal/domain"
)

// ConsoleFormatter renders the detailed plain-text report
type ConsoleFormatter struct {
	Rules domain.PAYERules
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(reports []domain.TaxReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, "PERSONAL INCOME TAX (PAYE) CALCULATION")
	fmt.Fprintln(&buf, RegimeHeadline(c.Rules))
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf)

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(&buf, strings.Repeat("-", 72))
			fmt.Fprintln(&buf)
		}
		writeConsoleReport(&buf, r)
	}

	fmt.Fprintln(&buf, "DISCLAIMER")
	fmt.Fprintln(&buf, wrap(Disclaimer(c.Rules), 72))
	return buf.Bytes(), nil
}

func writeConsoleReport(buf *bytes.Buffer, r domain.TaxReport) {
	title := r.Name
	if title == "" {
		title = "Declaration"
	}
	fmt.Fprintf(buf, "%s (%s)\n\n", strings.ToUpper(title), r.Category)

	fmt.Fprintf(buf, "  %-28s %18s\n", "Annual Tax", FormatNaira(r.Result.AnnualTax))
	fmt.Fprintf(buf, "  %-28s %18s\n", "Monthly Tax", FormatNaira(r.Result.MonthlyTax))
	fmt.Fprintf(buf, "  %-28s %18s\n", "Effective Tax Rate", FormatPercent(r.EffectiveRatePercent, 0))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "TAX BAND BREAKDOWN")
	if len(r.Result.Breakdown) == 0 {
		fmt.Fprintln(buf, "  No taxable income after relief")
	}
	for _, b := range r.Result.Breakdown {
		fmt.Fprintf(buf, "  %-28s %5s  %14s on %s\n",
			BandLabel(b), FormatRate(b.Rate), FormatNaira(b.TaxInBand), FormatNaira(b.TaxableAmountInBand))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "INCOME SUMMARY")
	summaryLine(buf, "Gross Annual Income", FormatNaira(r.GrossIncome))
	summaryLine(buf, "Total Deductions", FormatNaira(r.TotalDeductions.Neg()))
	summaryLine(buf, "  • Pension Contribution", FormatNaira(r.Deductions.Pension))
	summaryLine(buf, "  • NHIS Contribution", FormatNaira(r.Deductions.NHIS))
	summaryLine(buf, "  • Rent Relief", FormatNaira(r.Deductions.RentRelief))
	summaryLine(buf, "  • Consolidated Relief (CRA)", FormatNaira(r.Result.CRA))
	summaryLine(buf, "Taxable Income", FormatNaira(r.Result.TaxableIncome))
	summaryLine(buf, "Total Tax", FormatNaira(r.Result.AnnualTax.Neg()))
	summaryLine(buf, "Net Annual Income", FormatNaira(r.NetAnnualIncome))
	summaryLine(buf, "Net Monthly Income", FormatNaira(r.NetMonthlyIncome()))
	fmt.Fprintln(buf)

	for _, n := range r.Notices {
		fmt.Fprintf(buf, "NOTE: %s\n", n)
	}
	if len(r.Notices) > 0 {
		fmt.Fprintln(buf)
	}
}

func summaryLine(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-30s %18s\n", label, value)
}

// wrap breaks text on spaces so no line exceeds width
func wrap(text string, width int) string {
	var sb strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		wl := len([]rune(word))
		if lineLen > 0 && lineLen+1+wl > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += wl
	}
	return sb.String()
}
