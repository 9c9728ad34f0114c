package compare

import (
	"fmt"

	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/output"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single declaration with its calculated metrics
type ComparisonResult struct {
	DeclarationName string            `json:"declarationName"`
	Description     string            `json:"description,omitempty"`
	Report          *domain.TaxReport `json:"report,omitempty"`

	// Key Metrics
	GrossIncome          decimal.Decimal `json:"grossIncome"`
	AnnualTax            decimal.Decimal `json:"annualTax"`
	MonthlyTax           decimal.Decimal `json:"monthlyTax"`
	EffectiveRatePercent decimal.Decimal `json:"effectiveRatePercent"`
	NetAnnualIncome      decimal.Decimal `json:"netAnnualIncome"`

	// Comparison to Base
	GrossDiffFromBase   decimal.Decimal `json:"grossDiffFromBase"`
	TaxDiffFromBase     decimal.Decimal `json:"taxDiffFromBase"`
	NetDiffFromBase     decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase      decimal.Decimal `json:"netPctFromBase"`
	EffectiveRateDiff   decimal.Decimal `json:"effectiveRateDiff"`
	MarginalRatePercent decimal.Decimal `json:"marginalRatePercent"` // tax diff / gross diff
	HasMarginalRate     bool            `json:"hasMarginalRate"`
}

// ComparisonSet represents a collection of declaration comparisons
type ComparisonSet struct {
	BaseName           string             `json:"baseName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// Reports returns the base and alternative reports in display order
func (cs *ComparisonSet) Reports() []domain.TaxReport {
	reports := make([]domain.TaxReport, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil && cs.BaseResult.Report != nil {
		reports = append(reports, *cs.BaseResult.Report)
	}
	for _, alt := range cs.AlternativeResults {
		if alt.Report != nil {
			reports = append(reports, *alt.Report)
		}
	}
	return reports
}

// MetricsCalculator extracts key metrics from tax reports
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for one report
func (mc *MetricsCalculator) CalculateMetrics(report *domain.TaxReport) ComparisonResult {
	return ComparisonResult{
		DeclarationName:      report.Name,
		Report:               report,
		GrossIncome:          report.GrossIncome,
		AnnualTax:            report.Result.AnnualTax,
		MonthlyTax:           report.Result.MonthlyTax,
		EffectiveRatePercent: report.EffectiveRatePercent,
		NetAnnualIncome:      report.NetAnnualIncome,
	}
}

// CalculateComparison computes deltas between a declaration and the base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.GrossDiffFromBase = alt.GrossIncome.Sub(base.GrossIncome)
	alt.TaxDiffFromBase = alt.AnnualTax.Sub(base.AnnualTax)
	alt.NetDiffFromBase = alt.NetAnnualIncome.Sub(base.NetAnnualIncome)
	alt.EffectiveRateDiff = alt.EffectiveRatePercent.Sub(base.EffectiveRatePercent)

	if !base.NetAnnualIncome.IsZero() {
		alt.NetPctFromBase = alt.NetDiffFromBase.
			Div(base.NetAnnualIncome.Abs()).
			Mul(decimal.NewFromInt(100))
	}
	if !alt.GrossDiffFromBase.IsZero() {
		alt.MarginalRatePercent = alt.TaxDiffFromBase.
			Div(alt.GrossDiffFromBase).
			Mul(decimal.NewFromInt(100))
		alt.HasMarginalRate = true
	}
	return alt
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Find lowest tax
	lowestTax := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.AnnualTax.LessThan(lowestTax.AnnualTax) {
			lowestTax = alt
		}
	}
	if lowestTax != compSet.BaseResult {
		savings := compSet.BaseResult.AnnualTax.Sub(lowestTax.AnnualTax)
		recommendations = append(recommendations,
			"Lowest Tax: "+lowestTax.DeclarationName+" pays "+output.FormatNaira(savings)+
				" less annual tax than "+compSet.BaseName)
	}

	// Find highest take-home
	bestNet := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.NetAnnualIncome.GreaterThan(bestNet.NetAnnualIncome) {
			bestNet = alt
		}
	}
	if bestNet != compSet.BaseResult {
		gain := bestNet.NetAnnualIncome.Sub(compSet.BaseResult.NetAnnualIncome)
		recommendations = append(recommendations,
			"Highest Net Income: "+bestNet.DeclarationName+" takes home "+output.FormatNaira(gain)+
				" more per year than "+compSet.BaseName)
	}

	// Marginal retention on extra gross income
	for _, alt := range compSet.AlternativeResults {
		if alt.HasMarginalRate && alt.GrossDiffFromBase.IsPositive() {
			keep := decimal.NewFromInt(100).Sub(alt.MarginalRatePercent)
			recommendations = append(recommendations,
				fmt.Sprintf("Marginal: %s keeps %s of every extra ₦100 of gross income after tax",
					alt.DeclarationName, output.FormatNaira(keep)))
		}
	}

	return recommendations
}
