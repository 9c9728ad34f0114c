package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category is the taxpayer category shown on reports
type Category string

const (
	CategoryEmployed     Category = "Employed"
	CategorySelfEmployed Category = "Self-Employed"
)

// Valid reports whether c is a known category. Empty counts as Employed.
func (c Category) Valid() bool {
	switch c {
	case "", CategoryEmployed, CategorySelfEmployed:
		return true
	}
	return false
}

// OrDefault returns Employed for an empty category
func (c Category) OrDefault() Category {
	if c == "" {
		return CategoryEmployed
	}
	return c
}

// IncomeInput is one income declaration. It is built once per calculation
// and never mutated by the engine.
type IncomeInput struct {
	Name     string   `yaml:"name" json:"name"`
	Category Category `yaml:"category" json:"category"`

	MonthlySalary    decimal.Decimal `yaml:"monthly_salary" json:"monthly_salary"`
	AnnualRent       decimal.Decimal `yaml:"annual_rent" json:"annual_rent"`
	RentalIncome     decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	InvestmentIncome decimal.Decimal `yaml:"investment_income" json:"investment_income"`
	OtherIncome      decimal.Decimal `yaml:"other_income" json:"other_income"`

	PensionEnabled     bool             `yaml:"pension_enabled" json:"pension_enabled"`
	PensionRatePercent *decimal.Decimal `yaml:"pension_rate_percent,omitempty" json:"pension_rate_percent,omitempty"`
	NHISEnabled        bool             `yaml:"nhis_enabled" json:"nhis_enabled"`
}

var monthsPerYear = decimal.NewFromInt(12)

// AnnualSalary returns the monthly salary annualised
func (in IncomeInput) AnnualSalary() decimal.Decimal {
	return in.MonthlySalary.Mul(monthsPerYear)
}

// AdditionalIncome returns rental + investment + other income
func (in IncomeInput) AdditionalIncome() decimal.Decimal {
	return in.RentalIncome.Add(in.InvestmentIncome).Add(in.OtherIncome)
}

// GrossAnnualIncome returns salary*12 plus all additional income
func (in IncomeInput) GrossAnnualIncome() decimal.Decimal {
	return in.AnnualSalary().Add(in.AdditionalIncome())
}

// Validate checks the declaration before it reaches the engine
func (in IncomeInput) Validate() error {
	if !in.Category.Valid() {
		return fmt.Errorf("unknown category %q (valid: %s, %s)", in.Category, CategoryEmployed, CategorySelfEmployed)
	}
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"monthly_salary", in.MonthlySalary},
		{"annual_rent", in.AnnualRent},
		{"rental_income", in.RentalIncome},
		{"investment_income", in.InvestmentIncome},
		{"other_income", in.OtherIncome},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%s: %w", a.field, ErrNegativeAmount)
		}
	}
	if in.PensionRatePercent != nil {
		if in.PensionRatePercent.IsNegative() || in.PensionRatePercent.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("pension rate percent must be between 0 and 100")
		}
	}
	return nil
}

// Configuration is the content of an income declaration file
type Configuration struct {
	RulesFile    string        `yaml:"rules_file,omitempty" json:"rules_file,omitempty"`
	Declarations []IncomeInput `yaml:"declarations" json:"declarations"`
}

// FindDeclaration returns the declaration with the given name
func (c *Configuration) FindDeclaration(name string) (*IncomeInput, error) {
	for i := range c.Declarations {
		if c.Declarations[i].Name == name {
			return &c.Declarations[i], nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrDeclarationNotFound)
}

// DeclarationNames lists declaration names in file order
func (c *Configuration) DeclarationNames() []string {
	names := make([]string, 0, len(c.Declarations))
	for _, d := range c.Declarations {
		names = append(names, d.Name)
	}
	return names
}
