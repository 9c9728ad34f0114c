package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naijatax/paye/internal/calculation"
	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/tui/scenes"
	"github.com/naijatax/paye/internal/tui/tuimsg"
)

// Model represents the entire application state
type Model struct {
	view View

	// Terminal dimensions
	width  int
	height int

	engine *calculation.CalculationEngine
	rules  domain.PAYERules

	inputModel  *scenes.InputModel
	resultModel *scenes.ResultModel

	calculating bool
}

// NewModel creates the app on the input view. The engine's rules should
// match rules, which drive labels and the disclaimer.
func NewModel(engine *calculation.CalculationEngine, rules domain.PAYERules) Model {
	return Model{
		view:        ViewInput,
		width:       80,
		height:      24,
		engine:      engine,
		rules:       rules,
		inputModel:  scenes.NewInputModel(rules),
		resultModel: scenes.NewResultModel(rules),
	}
}

// WithDeclaration pre-fills the form
func (m Model) WithDeclaration(in domain.IncomeInput) Model {
	m.inputModel.SetDeclaration(in)
	return m
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// CurrentView reports which screen is showing
func (m Model) CurrentView() View {
	return m.view
}

// Report returns the last computed report, if any
func (m Model) Report() *domain.TaxReport {
	return m.resultModel.Report()
}

// calculateCmd runs the engine off the update loop
func calculateCmd(engine *calculation.CalculationEngine, in domain.IncomeInput) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.Run(context.Background(), in)
		return tuimsg.CalculationCompleteMsg{Report: report, Err: err}
	}
}
