package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naijatax/paye/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.view {
	case ViewInput:
		content = m.inputModel.View()
		if m.calculating {
			content += "\n\n" + tuistyles.HintStyle.Render("Calculating...")
		}
	case ViewResult:
		content = m.resultModel.View()
	default:
		content = "Unknown view"
	}

	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	))
}

// contentHeight leaves room for the title and status bars
func (m Model) contentHeight() int {
	return m.height - 7
}

func (m Model) renderTitleBar() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		tuistyles.TitleStyle.Render("PAYE · Nigerian Personal Income Tax"),
		tuistyles.SubtitleStyle.Render(m.view.String()),
		"",
	)
}

// renderStatusBar renders the keyboard shortcuts for the current view
func (m Model) renderStatusBar() string {
	var shortcuts []string
	switch m.view {
	case ViewInput:
		shortcuts = []string{
			formatShortcut("tab/↓", "next"),
			formatShortcut("shift+tab/↑", "previous"),
			formatShortcut("space", "toggle"),
			formatShortcut("enter", "calculate"),
			formatShortcut("esc", "quit"),
		}
	case ViewResult:
		shortcuts = []string{
			formatShortcut("↑/↓", "scroll"),
			formatShortcut("r", "recalculate"),
			formatShortcut("q", "quit"),
		}
	}
	return tuistyles.StatusBarStyle.Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}
