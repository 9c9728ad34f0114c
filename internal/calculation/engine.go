package calculation

import (
	"context"
	"fmt"

	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
)

// DeductionsNotice is attached to reports whose display deductions are non-zero
const DeductionsNotice = "Pension, NHIS and rent relief are shown for information only; they are not deducted from taxable income"

// CalculationEngine orchestrates a full tax report for a declaration
type CalculationEngine struct {
	TaxCalc       *PAYECalculator
	DeductionCalc *DeductionCalculator
	Logger        Logger
	Debug         bool // Enable debug output for detailed calculations
}

// NewCalculationEngine creates an engine for the 2026 regime
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxCalc:       NewPAYECalculator2026(),
		DeductionCalc: NewDeductionCalculator(domain.DefaultDeductionRules()),
		Logger:        NopLogger{},
	}
}

// NewCalculationEngineWithRules creates an engine with configurable rules
func NewCalculationEngineWithRules(rules domain.PAYERules) *CalculationEngine {
	if len(rules.Bands) == 0 {
		rules = domain.DefaultPAYERules()
	}
	return &CalculationEngine{
		TaxCalc:       NewPAYECalculator(rules),
		DeductionCalc: &DeductionCalculator{Rules: rules.Deductions},
		Logger:        NopLogger{},
	}
}

// SetLogger sets the engine logger; nil installs a no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Run validates a declaration and produces its tax report
func (ce *CalculationEngine) Run(ctx context.Context, in domain.IncomeInput) (*domain.TaxReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("declaration %q: %w", in.Name, err)
	}

	gross := in.GrossAnnualIncome()
	result := ce.TaxCalc.ComputeTax(gross)
	deductions := ce.DeductionCalc.Calculate(in, gross)

	report := &domain.TaxReport{
		Name:            in.Name,
		Category:        in.Category.OrDefault(),
		GrossIncome:     gross,
		Result:          result,
		Deductions:      deductions,
		TotalDeductions: deductions.Total().Add(result.CRA),
		NetAnnualIncome: gross.Sub(result.AnnualTax).Sub(deductions.Pension).Sub(deductions.NHIS),
	}
	if gross.GreaterThan(decimal.Zero) {
		report.EffectiveRatePercent = result.AnnualTax.Div(gross).Mul(decimal.NewFromInt(100))
	}

	if !deductions.IsZero() {
		report.Notices = append(report.Notices, DeductionsNotice)
		ce.Logger.Warnf("declaration %q: display deductions %s not applied to taxable income", in.Name, deductions.Total().StringFixed(2))
	}

	if ce.Debug {
		ce.Logger.Debugf("declaration %q: gross=%s cra=%s taxable=%s", in.Name,
			gross.StringFixed(2), result.CRA.StringFixed(2), result.TaxableIncome.StringFixed(2))
		for i, b := range result.Breakdown {
			ce.Logger.Debugf("  band %d width=%s rate=%s amount=%s tax=%s", i+1,
				b.BandWidth, b.Rate, b.TaxableAmountInBand.StringFixed(2), b.TaxInBand.StringFixed(2))
		}
		ce.Logger.Debugf("declaration %q: annual=%s monthly=%s", in.Name,
			result.AnnualTax.StringFixed(2), result.MonthlyTax.StringFixed(2))
	}

	return report, nil
}

// RunAll produces a report for every declaration in file order
func (ce *CalculationEngine) RunAll(ctx context.Context, cfg *domain.Configuration) ([]domain.TaxReport, error) {
	if cfg == nil || len(cfg.Declarations) == 0 {
		return nil, fmt.Errorf("no declarations provided")
	}
	reports := make([]domain.TaxReport, 0, len(cfg.Declarations))
	for i := range cfg.Declarations {
		report, err := ce.Run(ctx, cfg.Declarations[i])
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	ce.Logger.Infof("calculated %d declaration(s)", len(reports))
	return reports, nil
}

// RunNamed produces the report for one named declaration
func (ce *CalculationEngine) RunNamed(ctx context.Context, cfg *domain.Configuration, name string) (*domain.TaxReport, error) {
	in, err := cfg.FindDeclaration(name)
	if err != nil {
		return nil, err
	}
	return ce.Run(ctx, *in)
}
