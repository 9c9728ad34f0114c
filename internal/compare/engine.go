package compare

import (
	"context"
	"fmt"

	"github.com/naijatax/paye/internal/calculation"
	"github.com/naijatax/paye/internal/domain"
)

// CompareEngine orchestrates declaration comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseName     string   // Declaration to compare against
	Alternatives []string // Other declarations from the same file
	Templates    []string // What-if templates applied to the base
}

// Compare runs the base declaration against named alternatives and templates
func (ce *CompareEngine) Compare(
	ctx context.Context,
	config *domain.Configuration,
	options CompareOptions,
) (*ComparisonSet, error) {
	base, err := config.FindDeclaration(options.BaseName)
	if err != nil {
		return nil, fmt.Errorf("base declaration: %w", err)
	}
	if len(options.Alternatives) == 0 && len(options.Templates) == 0 {
		return nil, fmt.Errorf("nothing to compare %s against", options.BaseName)
	}

	baseReport, err := ce.CalcEngine.Run(ctx, *base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base declaration: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseReport)

	alternatives := []ComparisonResult{}

	for _, altName := range options.Alternatives {
		alt, err := config.FindDeclaration(altName)
		if err != nil {
			return nil, err
		}
		altResult, err := ce.calculate(ctx, *alt, "", baseResult)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate declaration %s: %w", altName, err)
		}
		alternatives = append(alternatives, altResult)
	}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found (available: %v)", templateName, ce.TemplateRegistry.List())
		}

		modified := template.Apply(*base)
		modified.Name = base.Name + "_" + template.Name

		altResult, err := ce.calculate(ctx, modified, template.Description, baseResult)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate template %s: %w", templateName, err)
		}
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseName:           base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) calculate(ctx context.Context, in domain.IncomeInput, description string, base ComparisonResult) (ComparisonResult, error) {
	report, err := ce.CalcEngine.Run(ctx, in)
	if err != nil {
		return ComparisonResult{}, err
	}
	result := ce.MetricsCalculator.CalculateMetrics(report)
	result.Description = description
	return ce.MetricsCalculator.CalculateComparison(result, base), nil
}
