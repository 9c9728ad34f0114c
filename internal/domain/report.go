package domain

import (
	"github.com/shopspring/decimal"
)

// DisplayDeductions are shown next to the CRA on reports.
// They do not reduce taxable income.
type DisplayDeductions struct {
	Pension    decimal.Decimal `yaml:"pension" json:"pension"`
	NHIS       decimal.Decimal `yaml:"nhis" json:"nhis"`
	RentRelief decimal.Decimal `yaml:"rent_relief" json:"rent_relief"`
}

// Total returns pension + NHIS + rent relief
func (d DisplayDeductions) Total() decimal.Decimal {
	return d.Pension.Add(d.NHIS).Add(d.RentRelief)
}

// IsZero reports whether every display deduction is zero
func (d DisplayDeductions) IsZero() bool {
	return d.Pension.IsZero() && d.NHIS.IsZero() && d.RentRelief.IsZero()
}

// TaxReport is the full result for one declaration
type TaxReport struct {
	Name     string   `yaml:"name" json:"name"`
	Category Category `yaml:"category" json:"category"`

	GrossIncome decimal.Decimal   `yaml:"gross_income" json:"gross_income"`
	Result      CalculationResult `yaml:"result" json:"result"`
	Deductions  DisplayDeductions `yaml:"deductions" json:"deductions"`

	// TotalDeductions is the display deductions plus CRA
	TotalDeductions      decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`
	EffectiveRatePercent decimal.Decimal `yaml:"effective_rate_percent" json:"effective_rate_percent"`
	// NetAnnualIncome is gross - annual tax - pension - NHIS
	NetAnnualIncome decimal.Decimal `yaml:"net_annual_income" json:"net_annual_income"`

	Notices []string `yaml:"notices,omitempty" json:"notices,omitempty"`
}

// NetMonthlyIncome returns NetAnnualIncome / 12
func (r TaxReport) NetMonthlyIncome() decimal.Decimal {
	return r.NetAnnualIncome.Div(monthsPerYear)
}
