package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naijatax/paye/internal/tui/tuimsg"
)

type keyMap struct {
	Quit        key.Binding
	Recalculate key.Binding
	Back        key.Binding
}

var keys = keyMap{
	Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Recalculate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recalculate")),
	Back:        key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("q", "quit")),
}

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.inputModel.SetSize(msg.Width)
		m.resultModel.SetSize(msg.Width, m.contentHeight())
		return m, nil

	case tuimsg.CalculateRequestedMsg:
		m.calculating = true
		return m, calculateCmd(m.engine, msg.Input)

	case tuimsg.CalculationCompleteMsg:
		m.calculating = false
		if msg.Err != nil {
			m.inputModel.SetError(msg.Err)
			return m, nil
		}
		m.resultModel.SetReport(msg.Report)
		m.view = ViewResult
		return m, nil

	case tuimsg.RecalculateMsg:
		m.view = ViewInput
		return m, nil
	}

	return m.updateCurrentView(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}

	switch m.view {
	case ViewResult:
		switch {
		case key.Matches(msg, keys.Recalculate):
			return m, func() tea.Msg { return tuimsg.RecalculateMsg{} }
		case key.Matches(msg, keys.Back):
			return m, tea.Quit
		}
	case ViewInput:
		if msg.String() == "esc" || (msg.String() == "q" && !m.inputModel.Editing()) {
			return m, tea.Quit
		}
	}

	return m.updateCurrentView(msg)
}

// updateCurrentView delegates to the active scene
func (m Model) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewInput:
		m.inputModel, cmd = m.inputModel.Update(msg)
	case ViewResult:
		m.resultModel, cmd = m.resultModel.Update(msg)
	}
	return m, cmd
}
