package grossup

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/naijatax/paye/internal/output"
)

// TableFormatter formats gross-up results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a gross-up result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("GROSS-UP RESULT\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-24s%s\n", "Target Net ("+tf.basis(result.Request.Basis)+"):", output.FormatNaira(result.Request.TargetNet)))
	sb.WriteString(fmt.Sprintf("Status:                 %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:             %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:            %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("REQUIRED GROSS INCOME\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Gross Annual Income:    %s\n", output.FormatNaira(result.GrossAnnual)))
	sb.WriteString(fmt.Sprintf("Gross Monthly Income:   %s\n", output.FormatNaira(result.GrossMonthly)))
	sb.WriteString("\n")

	if r := result.Report; r != nil {
		sb.WriteString("AT THIS GROSS\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		sb.WriteString(fmt.Sprintf("Annual Tax:             %s\n", output.FormatNaira(r.Result.AnnualTax)))
		sb.WriteString(fmt.Sprintf("Monthly Tax:            %s\n", output.FormatNaira(r.Result.MonthlyTax)))
		sb.WriteString(fmt.Sprintf("Effective Tax Rate:     %s\n", output.FormatPercent(r.EffectiveRatePercent, 2)))
		if !r.Deductions.Pension.IsZero() || !r.Deductions.NHIS.IsZero() {
			sb.WriteString(fmt.Sprintf("Pension + NHIS:         %s\n", output.FormatNaira(r.Deductions.Pension.Add(r.Deductions.NHIS))))
		}
		sb.WriteString(fmt.Sprintf("Net Annual Income:      %s\n", output.FormatNaira(r.NetAnnualIncome)))
		sb.WriteString(fmt.Sprintf("Net Monthly Income:     %s\n", output.FormatNaira(r.NetMonthlyIncome())))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) basis(b Basis) string {
	if b == "" {
		return string(BasisAnnual)
	}
	return string(b)
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
