package grossup

import (
	"context"
	"fmt"

	"github.com/naijatax/paye/internal/calculation"
	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	two    = decimal.NewFromInt(2)
	twelve = decimal.NewFromInt(12)
	// bisection stops once the bracket is narrower than a kobo
	minBracket = decimal.NewFromFloat(0.01)
)

// Solver finds the gross income that yields a target net income
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new gross-up solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve bisects over gross annual salary. Net income never exceeds gross, so
// the target itself is a lower bound; the upper bound is found by doubling.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}
	target := req.AnnualTarget()
	if target.IsZero() {
		report, err := s.evaluate(ctx, req.Template, decimal.Zero)
		if err != nil {
			return nil, err
		}
		return s.result(req, decimal.Zero, report, 0, true, "Zero target needs zero gross income"), nil
	}

	lo := target
	hi := decimal.Max(target.Mul(two), decimal.NewFromInt(1_000_000))
	hiReport, err := s.evaluate(ctx, req.Template, hi)
	if err != nil {
		return nil, err
	}
	for doublings := 0; hiReport.NetAnnualIncome.LessThan(target); doublings++ {
		if doublings >= s.Options.MaxDoublings {
			return nil, &SolverError{
				Operation: "bracket_target",
				Message:   fmt.Sprintf("net income never reaches %s; check pension and NHIS settings", target.StringFixed(2)),
			}
		}
		lo = hi
		hi = hi.Mul(two)
		if hiReport, err = s.evaluate(ctx, req.Template, hi); err != nil {
			return nil, err
		}
	}

	bestGross, best := hi, hiReport
	iterations := 0
	for iterations < req.MaxIterations {
		iterations++

		mid := lo.Add(hi).Div(two)
		report, err := s.evaluate(ctx, req.Template, mid)
		if err != nil {
			return nil, err
		}

		diff := report.NetAnnualIncome.Sub(target)
		if diff.Abs().LessThanOrEqual(req.Tolerance) {
			return s.result(req, mid, report, iterations, true,
				fmt.Sprintf("Converged within ₦%s after %d iterations", req.Tolerance.String(), iterations)), nil
		}
		if diff.IsNegative() {
			lo = mid
		} else {
			hi = mid
			bestGross, best = mid, report
		}
		if hi.Sub(lo).LessThan(minBracket) {
			break
		}
	}

	// the smallest gross seen that meets the target
	return s.result(req, bestGross, best, iterations, false,
		fmt.Sprintf("Stopped after %d iterations; closest gross meeting the target is shown", iterations)), nil
}

func (s *Solver) evaluate(ctx context.Context, template domain.IncomeInput, grossAnnual decimal.Decimal) (*domain.TaxReport, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// the candidate is carried whole in OtherIncome so gross is exact
	in := template
	in.MonthlySalary = decimal.Zero
	in.RentalIncome = decimal.Zero
	in.InvestmentIncome = decimal.Zero
	in.OtherIncome = grossAnnual

	report, err := s.CalcEngine.Run(ctx, in)
	if err != nil {
		return nil, &SolverError{
			Operation: "evaluate",
			Message:   "failed to calculate candidate gross " + grossAnnual.StringFixed(2),
			Cause:     err,
		}
	}
	return report, nil
}

func (s *Solver) result(req Request, gross decimal.Decimal, report *domain.TaxReport, iterations int, success bool, info string) *Result {
	return &Result{
		Request:         req,
		Success:         success,
		Iterations:      iterations,
		ConvergenceInfo: info,
		GrossAnnual:     gross,
		GrossMonthly:    gross.Div(twelve),
		Report:          report,
	}
}
