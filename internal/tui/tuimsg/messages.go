// Package tuimsg holds the messages exchanged between the TUI scenes and the
// root model.
package tuimsg

import (
	"github.com/naijatax/paye/internal/domain"
)

// CalculateRequestedMsg is sent when the input form is submitted
type CalculateRequestedMsg struct {
	Input domain.IncomeInput
}

// CalculationCompleteMsg carries the engine result for a submitted form
type CalculationCompleteMsg struct {
	Report *domain.TaxReport
	Err    error
}

// RecalculateMsg returns from the result view to the form
type RecalculateMsg struct{}
