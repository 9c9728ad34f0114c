package grossup

import (
	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
)

// Basis says whether the target net income is annual or monthly
type Basis string

const (
	BasisAnnual  Basis = "annual"
	BasisMonthly Basis = "monthly"
)

// Request defines the parameters for a gross-up solve
type Request struct {
	// TargetNet is the take-home income to reach
	TargetNet decimal.Decimal `json:"target_net"`
	Basis     Basis           `json:"basis,omitempty"`

	// Template carries the category and deduction toggles applied to every
	// candidate. Its income amounts are ignored.
	Template domain.IncomeInput `json:"template"`

	MaxIterations int             `json:"max_iterations,omitempty"`
	Tolerance     decimal.Decimal `json:"tolerance,omitempty"`
}

// AnnualTarget returns the target as an annual figure
func (r Request) AnnualTarget() decimal.Decimal {
	if r.Basis == BasisMonthly {
		return r.TargetNet.Mul(decimal.NewFromInt(12))
	}
	return r.TargetNet
}

// Validate checks the request before solving
func (r Request) Validate() error {
	if r.TargetNet.IsNegative() {
		return &SolverError{Operation: "validate_request", Message: "target net income cannot be negative"}
	}
	if r.Basis != "" && r.Basis != BasisAnnual && r.Basis != BasisMonthly {
		return &SolverError{Operation: "validate_request", Message: "basis must be annual or monthly"}
	}
	if r.Tolerance.IsNegative() {
		return &SolverError{Operation: "validate_request", Message: "tolerance cannot be negative"}
	}
	return nil
}

// Result contains the outcome of a gross-up solve
type Result struct {
	Request         Request           `json:"request"`
	Success         bool              `json:"success"`
	Iterations      int               `json:"iterations"`
	ConvergenceInfo string            `json:"convergence_info"`
	GrossAnnual     decimal.Decimal   `json:"gross_annual"`
	GrossMonthly    decimal.Decimal   `json:"gross_monthly"`
	Report          *domain.TaxReport `json:"report"`
}

// Shortfall returns achieved net minus the annual target
func (r Result) Shortfall() decimal.Decimal {
	if r.Report == nil {
		return r.Request.AnnualTarget().Neg()
	}
	return r.Report.NetAnnualIncome.Sub(r.Request.AnnualTarget())
}

// SolverOptions configures the bisection
type SolverOptions struct {
	Tolerance     decimal.Decimal // Acceptable |net - target|, in naira
	MaxIterations int             // Maximum bisection steps
	MaxDoublings  int             // Attempts to bracket the target from above
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1), // ₦1
		MaxIterations: 100,
		MaxDoublings:  40,
	}
}

// SolverError represents errors from the gross-up solver
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
