package components

import (
	"fmt"
	"strings"

	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/output"
	"github.com/naijatax/paye/internal/tui/tuistyles"
)

// BandTable renders a band breakdown as "label  rate  tax on amount" rows
func BandTable(breakdown []domain.TaxBandBreakdown) string {
	if len(breakdown) == 0 {
		return tuistyles.HintStyle.Render("No taxable income after relief")
	}

	var sb strings.Builder
	sb.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-26s %5s %14s %16s", "Band", "Rate", "Tax", "Taxed Amount")))
	for _, b := range breakdown {
		sb.WriteString("\n")
		sb.WriteString(tuistyles.TableCellStyle.Render(fmt.Sprintf("%-26s %5s %14s %16s",
			output.BandLabel(b), output.FormatRate(b.Rate), output.FormatNaira(b.TaxInBand), output.FormatNaira(b.TaxableAmountInBand))))
	}
	return sb.String()
}

// SummaryLine renders "label ........ amount" padded to width
func SummaryLine(label, amount string, width int, negative bool) string {
	pad := width - len([]rune(label)) - len([]rune(amount))
	if pad < 1 {
		pad = 1
	}
	return tuistyles.FieldLabelStyle.Render(label) + strings.Repeat(" ", pad) + tuistyles.AmountStyle(negative).Render(amount)
}
