package calculation

import (
	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
)

// PAYE CALCULATION ASSUMPTIONS:
//
// 1. Bands: Nigeria Tax Act 2025 schedule (effective 1 January 2026)
//    - 300,000 @ 7%, 300,000 @ 11%, 500,000 @ 15%, 500,000 @ 19%,
//      1,600,000 @ 21%, balance @ 24%
//    - Widths are the income each band absorbs, not cumulative thresholds
//
// 2. CRA: max(200,000, 1% of gross) + 20% of gross, always granted
//
// 3. Pension, NHIS and rent relief are informational only and are NOT
//    subtracted before taxing (see deductions.go)
//
// 4. No rounding is applied; monthly tax is annual tax / 12

// PAYECalculator computes personal income tax from gross annual income.
// It holds read-only rule tables and is safe for concurrent use.
type PAYECalculator struct {
	CRA   domain.CRARules
	Bands []domain.TaxBand
}

// NewPAYECalculator2026 creates a calculator for the 2026 regime
func NewPAYECalculator2026() *PAYECalculator {
	return &PAYECalculator{
		CRA:   domain.DefaultCRARules(),
		Bands: domain.DefaultBands(),
	}
}

// NewPAYECalculator creates a calculator from configurable rules. Rules
// without a band table are treated as unset and get the 2026 defaults;
// otherwise the CRA section is used as given, so an all-zero CRA means no
// relief.
func NewPAYECalculator(rules domain.PAYERules) *PAYECalculator {
	if len(rules.Bands) == 0 {
		return NewPAYECalculator2026()
	}
	bands := make([]domain.TaxBand, len(rules.Bands))
	copy(bands, rules.Bands)
	return &PAYECalculator{CRA: rules.CRA, Bands: bands}
}

// CalculateCRA returns the consolidated relief allowance for gross income
func (pc *PAYECalculator) CalculateCRA(grossIncome decimal.Decimal) decimal.Decimal {
	floor := decimal.Max(pc.CRA.Floor, grossIncome.Mul(pc.CRA.FloorGrossRate))
	return floor.Add(grossIncome.Mul(pc.CRA.GrossRate))
}

// ComputeTax calculates the CRA, taxable income and per-band tax.
// It never fails; zero, negative or fully relieved income yields zero tax
// with an empty breakdown and taxable income clamped to zero.
func (pc *PAYECalculator) ComputeTax(grossIncome decimal.Decimal) domain.CalculationResult {
	cra := pc.CalculateCRA(grossIncome)
	taxableIncome := grossIncome.Sub(cra)

	breakdown := []domain.TaxBandBreakdown{}

	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return domain.CalculationResult{
			CRA:           cra,
			TaxableIncome: decimal.Zero,
			AnnualTax:     decimal.Zero,
			MonthlyTax:    decimal.Zero,
			Breakdown:     breakdown,
		}
	}

	remaining := taxableIncome
	totalTax := decimal.Zero
	for _, band := range pc.Bands {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		amountInBand := band.Width.Absorb(remaining)
		taxInBand := amountInBand.Mul(band.Rate)

		breakdown = append(breakdown, domain.TaxBandBreakdown{
			BandWidth:           band.Width,
			Rate:                band.Rate,
			TaxableAmountInBand: amountInBand,
			TaxInBand:           taxInBand,
		})

		totalTax = totalTax.Add(taxInBand)
		remaining = remaining.Sub(amountInBand)
	}

	return domain.CalculationResult{
		CRA:           cra,
		TaxableIncome: taxableIncome,
		AnnualTax:     totalTax,
		MonthlyTax:    totalTax.Div(monthsPerYear),
		Breakdown:     breakdown,
	}
}

var (
	monthsPerYear     = decimal.NewFromInt(12)
	defaultCalculator = NewPAYECalculator2026()
)

// ComputeTax runs the 2026 regime on grossIncome
func ComputeTax(grossIncome decimal.Decimal) domain.CalculationResult {
	return defaultCalculator.ComputeTax(grossIncome)
}
