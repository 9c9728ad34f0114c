package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// unboundedToken is the wire form of a band width with no ceiling
const unboundedToken = "unbounded"

// BandWidth is the amount of taxable income a band can absorb.
// The top band has no ceiling; it is marked with Unbounded rather than a
// floating-point infinity so it survives JSON and YAML round trips.
type BandWidth struct {
	Limit     decimal.Decimal
	Unbounded bool
}

// Bounded returns a band width that absorbs at most limit
func Bounded(limit decimal.Decimal) BandWidth {
	return BandWidth{Limit: limit}
}

// UnboundedWidth returns the width of a band that absorbs everything left
func UnboundedWidth() BandWidth {
	return BandWidth{Unbounded: true}
}

// Absorb returns the slice of remaining income this band takes
func (w BandWidth) Absorb(remaining decimal.Decimal) decimal.Decimal {
	if w.Unbounded {
		return remaining
	}
	return decimal.Min(remaining, w.Limit)
}

// String returns the limit, or "unbounded"
func (w BandWidth) String() string {
	if w.Unbounded {
		return unboundedToken
	}
	return w.Limit.String()
}

// MarshalJSON emits "unbounded" or the limit as a decimal string
func (w BandWidth) MarshalJSON() ([]byte, error) {
	if w.Unbounded {
		return json.Marshal(unboundedToken)
	}
	return w.Limit.MarshalJSON()
}

// UnmarshalJSON accepts "unbounded", a number, or a quoted number
func (w *BandWidth) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil && strings.EqualFold(strings.TrimSpace(s), unboundedToken) {
		*w = UnboundedWidth()
		return nil
	}
	var limit decimal.Decimal
	if err := limit.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid band width %s: %w", string(data), err)
	}
	*w = Bounded(limit)
	return nil
}

// MarshalYAML emits a plain numeric scalar or "unbounded"
func (w BandWidth) MarshalYAML() (interface{}, error) {
	if w.Unbounded {
		return unboundedToken, nil
	}
	tag := "!!float"
	if w.Limit.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: w.Limit.String()}, nil
}

// UnmarshalYAML accepts "unbounded" or a numeric scalar
func (w *BandWidth) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: band width must be a scalar", value.Line)
	}
	raw := strings.TrimSpace(value.Value)
	if strings.EqualFold(raw, unboundedToken) {
		*w = UnboundedWidth()
		return nil
	}
	limit, err := decimal.NewFromString(strings.ReplaceAll(raw, "_", ""))
	if err != nil {
		return fmt.Errorf("line %d: invalid band width %q: %w", value.Line, raw, err)
	}
	*w = Bounded(limit)
	return nil
}

// TaxBand is one slice of the progressive schedule
type TaxBand struct {
	Width BandWidth       `yaml:"width" json:"width"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// TaxBandBreakdown records how much income a band absorbed and the tax on it
type TaxBandBreakdown struct {
	BandWidth           BandWidth       `yaml:"band_width" json:"band_width"`
	Rate                decimal.Decimal `yaml:"rate" json:"rate"`
	TaxableAmountInBand decimal.Decimal `yaml:"taxable_amount_in_band" json:"taxable_amount_in_band"`
	TaxInBand           decimal.Decimal `yaml:"tax_in_band" json:"tax_in_band"`
}

// CalculationResult is the output of a single PAYE computation.
// MonthlyTax is AnnualTax / 12 without rounding.
type CalculationResult struct {
	CRA           decimal.Decimal    `yaml:"cra" json:"cra"`
	TaxableIncome decimal.Decimal    `yaml:"taxable_income" json:"taxable_income"`
	AnnualTax     decimal.Decimal    `yaml:"annual_tax" json:"annual_tax"`
	MonthlyTax    decimal.Decimal    `yaml:"monthly_tax" json:"monthly_tax"`
	Breakdown     []TaxBandBreakdown `yaml:"breakdown" json:"breakdown"`
}

// IsTaxFree reports whether no band was reached
func (r CalculationResult) IsTaxFree() bool {
	return len(r.Breakdown) == 0
}

// TotalBandTax sums TaxInBand across the breakdown
func (r CalculationResult) TotalBandTax() decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.Breakdown {
		total = total.Add(b.TaxInBand)
	}
	return total
}

// TotalBandIncome sums TaxableAmountInBand across the breakdown
func (r CalculationResult) TotalBandIncome() decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.Breakdown {
		total = total.Add(b.TaxableAmountInBand)
	}
	return total
}
