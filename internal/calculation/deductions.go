package calculation

import (
	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
)

// DeductionCalculator derives the pension, NHIS and rent relief figures that
// reports show next to the CRA. None of them reduce taxable income; the
// engine attaches a notice whenever one is non-zero.
type DeductionCalculator struct {
	Rules domain.DeductionRules
}

// NewDeductionCalculator creates a deduction calculator, falling back to defaults
func NewDeductionCalculator(rules domain.DeductionRules) *DeductionCalculator {
	if rules.IsZero() {
		rules = domain.DefaultDeductionRules()
	}
	return &DeductionCalculator{Rules: rules}
}

// RentRelief returns the lower of the cap and the relief rate of rent paid
func (dc *DeductionCalculator) RentRelief(rentPaid decimal.Decimal) decimal.Decimal {
	if rentPaid.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return decimal.Min(dc.Rules.RentReliefCap, rentPaid.Mul(dc.Rules.RentReliefRate))
}

// Pension returns gross * ratePercent / 100. A nil rate uses the default.
func (dc *DeductionCalculator) Pension(grossIncome decimal.Decimal, enabled bool, ratePercent *decimal.Decimal) decimal.Decimal {
	if !enabled {
		return decimal.Zero
	}
	rate := dc.Rules.DefaultPensionRatePercent
	if ratePercent != nil {
		rate = *ratePercent
	}
	return grossIncome.Mul(rate).Div(decimal.NewFromInt(100))
}

// NHIS returns the national health insurance contribution
func (dc *DeductionCalculator) NHIS(grossIncome decimal.Decimal, enabled bool) decimal.Decimal {
	if !enabled {
		return decimal.Zero
	}
	return grossIncome.Mul(dc.Rules.NHISRate)
}

// Calculate derives all display deductions for a declaration
func (dc *DeductionCalculator) Calculate(in domain.IncomeInput, grossIncome decimal.Decimal) domain.DisplayDeductions {
	return domain.DisplayDeductions{
		Pension:    dc.Pension(grossIncome, in.PensionEnabled, in.PensionRatePercent),
		NHIS:       dc.NHIS(grossIncome, in.NHISEnabled),
		RentRelief: dc.RentRelief(in.AnnualRent),
	}
}
