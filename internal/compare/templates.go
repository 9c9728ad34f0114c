package compare

import (
	"sort"
	"strings"

	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
)

// Template is a named what-if change applied to a base declaration
type Template struct {
	Name        string
	Description string
	Apply       func(in domain.IncomeInput) domain.IncomeInput
}

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func salaryRaise(percent int64) func(domain.IncomeInput) domain.IncomeInput {
	factor := decimal.NewFromInt(100 + percent).Div(decimal.NewFromInt(100))
	return func(in domain.IncomeInput) domain.IncomeInput {
		in.MonthlySalary = in.MonthlySalary.Mul(factor)
		return in
	}
}

// CreateBuiltInTemplates creates a registry with the common what-if changes
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "raise_10",
		Description: "Monthly salary increased by 10%",
		Apply:       salaryRaise(10),
	})
	registry.Register(Template{
		Name:        "raise_25",
		Description: "Monthly salary increased by 25%",
		Apply:       salaryRaise(25),
	})
	registry.Register(Template{
		Name:        "with_pension",
		Description: "Pension contribution enabled at the declared or default rate",
		Apply: func(in domain.IncomeInput) domain.IncomeInput {
			in.PensionEnabled = true
			return in
		},
	})
	registry.Register(Template{
		Name:        "with_nhis",
		Description: "NHIS contribution enabled",
		Apply: func(in domain.IncomeInput) domain.IncomeInput {
			in.NHISEnabled = true
			return in
		},
	})
	registry.Register(Template{
		Name:        "salary_only",
		Description: "Rental, investment and other income removed",
		Apply: func(in domain.IncomeInput) domain.IncomeInput {
			in.RentalIncome = decimal.Zero
			in.InvestmentIncome = decimal.Zero
			in.OtherIncome = decimal.Zero
			return in
		},
	})

	return registry
}
