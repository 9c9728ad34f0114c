package domain

import (
	"github.com/shopspring/decimal"
)

// PAYERules contains the statutory parameters of the personal income tax regime.
// Defaults come from DefaultPAYERules; a rules.yaml file may override any section.
type PAYERules struct {
	Metadata   RulesMetadata  `yaml:"metadata" json:"metadata"`
	CRA        CRARules       `yaml:"cra" json:"cra"`
	Bands      []TaxBand      `yaml:"bands" json:"bands"`
	Deductions DeductionRules `yaml:"deductions" json:"deductions"`
}

// RulesMetadata describes where the rules come from
type RulesMetadata struct {
	Act           string `yaml:"act" json:"act"`
	EffectiveDate string `yaml:"effective_date" json:"effective_date"`
	Description   string `yaml:"description" json:"description"`
}

// CRARules holds the Consolidated Relief Allowance parameters:
// max(Floor, gross*FloorGrossRate) + gross*GrossRate
type CRARules struct {
	Floor          decimal.Decimal `yaml:"floor" json:"floor"`
	FloorGrossRate decimal.Decimal `yaml:"floor_gross_rate" json:"floor_gross_rate"`
	GrossRate      decimal.Decimal `yaml:"gross_rate" json:"gross_rate"`
}

// DeductionRules holds the constants of the informational deductions
type DeductionRules struct {
	RentReliefCap             decimal.Decimal `yaml:"rent_relief_cap" json:"rent_relief_cap"`
	RentReliefRate            decimal.Decimal `yaml:"rent_relief_rate" json:"rent_relief_rate"`
	NHISRate                  decimal.Decimal `yaml:"nhis_rate" json:"nhis_rate"`
	DefaultPensionRatePercent decimal.Decimal `yaml:"default_pension_rate_percent" json:"default_pension_rate_percent"`
}

// IsZero reports whether no deduction parameter was supplied
func (d DeductionRules) IsZero() bool {
	return d.RentReliefCap.IsZero() && d.RentReliefRate.IsZero() &&
		d.NHISRate.IsZero() && d.DefaultPensionRatePercent.IsZero()
}

// DefaultBands returns the six-band schedule of the Nigeria Tax Act 2025
func DefaultBands() []TaxBand {
	return []TaxBand{
		{Width: Bounded(decimal.NewFromInt(300_000)), Rate: decimal.NewFromFloat(0.07)},
		{Width: Bounded(decimal.NewFromInt(300_000)), Rate: decimal.NewFromFloat(0.11)},
		{Width: Bounded(decimal.NewFromInt(500_000)), Rate: decimal.NewFromFloat(0.15)},
		{Width: Bounded(decimal.NewFromInt(500_000)), Rate: decimal.NewFromFloat(0.19)},
		{Width: Bounded(decimal.NewFromInt(1_600_000)), Rate: decimal.NewFromFloat(0.21)},
		{Width: UnboundedWidth(), Rate: decimal.NewFromFloat(0.24)},
	}
}

// DefaultCRARules returns the CRA parameters: max(200,000, 1% of gross) + 20% of gross
func DefaultCRARules() CRARules {
	return CRARules{
		Floor:          decimal.NewFromInt(200_000),
		FloorGrossRate: decimal.NewFromFloat(0.01),
		GrossRate:      decimal.NewFromFloat(0.20),
	}
}

// DefaultDeductionRules returns the informational deduction constants
func DefaultDeductionRules() DeductionRules {
	return DeductionRules{
		RentReliefCap:             decimal.NewFromInt(500_000),
		RentReliefRate:            decimal.NewFromFloat(0.20),
		NHISRate:                  decimal.NewFromFloat(0.05),
		DefaultPensionRatePercent: decimal.NewFromInt(8),
	}
}

// DefaultPAYERules returns the complete 2026 regime
func DefaultPAYERules() PAYERules {
	return PAYERules{
		Metadata: RulesMetadata{
			Act:           "Nigeria Tax Act 2025",
			EffectiveDate: "2026-01-01",
			Description:   "Personal income tax, progressive bands with consolidated relief allowance",
		},
		CRA:        DefaultCRARules(),
		Bands:      DefaultBands(),
		Deductions: DefaultDeductionRules(),
	}
}
