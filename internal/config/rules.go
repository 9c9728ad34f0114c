package config

import (
	"fmt"
	"os"

	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// LoadRulesFromFile reads a rules override file. Sections missing from the
// file keep their statutory defaults; a bands list replaces the whole table.
func LoadRulesFromFile(filename string) (domain.PAYERules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.PAYERules{}, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}
	return ParseRules(data)
}

// ParseRules decodes rules content over the defaults and validates the result
func ParseRules(data []byte) (domain.PAYERules, error) {
	rules := domain.DefaultPAYERules()
	// bands decode into a fresh slice so a shorter table does not inherit defaults
	rules.Bands = nil

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return domain.PAYERules{}, fmt.Errorf("failed to parse rules YAML: %w", err)
	}
	if len(rules.Bands) == 0 {
		rules.Bands = domain.DefaultBands()
	}

	if err := ValidateRules(rules); err != nil {
		return domain.PAYERules{}, err
	}
	return rules, nil
}

// ValidateRules checks the band table and CRA constants
func ValidateRules(rules domain.PAYERules) error {
	if len(rules.Bands) == 0 {
		return fmt.Errorf("%w: at least one tax band is required", domain.ErrInvalidRules)
	}

	one := decimal.NewFromInt(1)
	last := len(rules.Bands) - 1
	for i, band := range rules.Bands {
		if band.Width.Unbounded {
			if i != last {
				return fmt.Errorf("%w: band %d is unbounded but is not the last band", domain.ErrInvalidRules, i+1)
			}
		} else {
			if i == last {
				return fmt.Errorf("%w: the last band must be unbounded", domain.ErrInvalidRules)
			}
			if !band.Width.Limit.IsPositive() {
				return fmt.Errorf("%w: band %d width must be positive", domain.ErrInvalidRules, i+1)
			}
		}
		if band.Rate.IsNegative() || band.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: band %d rate %s must be between 0 and 1", domain.ErrInvalidRules, i+1, band.Rate)
		}
		if i > 0 && band.Rate.LessThan(rules.Bands[i-1].Rate) {
			return fmt.Errorf("%w: band %d rate %s is lower than band %d", domain.ErrInvalidRules, i+1, band.Rate, i)
		}
	}

	cra := rules.CRA
	if cra.Floor.IsNegative() || cra.FloorGrossRate.IsNegative() || cra.GrossRate.IsNegative() {
		return fmt.Errorf("%w: CRA values cannot be negative", domain.ErrInvalidRules)
	}
	if cra.FloorGrossRate.GreaterThan(one) || cra.GrossRate.GreaterThan(one) {
		return fmt.Errorf("%w: CRA rates must be at most 1", domain.ErrInvalidRules)
	}

	d := rules.Deductions
	if d.RentReliefCap.IsNegative() || d.RentReliefRate.IsNegative() || d.NHISRate.IsNegative() || d.DefaultPensionRatePercent.IsNegative() {
		return fmt.Errorf("%w: deduction values cannot be negative", domain.ErrInvalidRules)
	}
	return nil
}
