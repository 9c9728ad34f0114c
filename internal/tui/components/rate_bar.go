package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/naijatax/paye/internal/tui/tuistyles"
)

// RateBar draws a percentage as a filled bar, e.g. the effective tax rate
type RateBar struct {
	Label   string
	Percent float64
	Width   int
}

// NewRateBar creates a bar for percent (0-100)
func NewRateBar(label string, percent float64) *RateBar {
	return &RateBar{
		Label:   label,
		Percent: percent,
		Width:   40,
	}
}

// WithWidth sets the bar width
func (b *RateBar) WithWidth(width int) *RateBar {
	b.Width = width
	return b
}

// Filled returns the number of filled cells, clamped to the bar width
func (b *RateBar) Filled() int {
	filled := int(float64(b.Width) * b.Percent / 100)
	if filled < 0 {
		return 0
	}
	if filled > b.Width {
		return b.Width
	}
	return filled
}

// Render returns the styled bar
func (b *RateBar) Render() string {
	var content strings.Builder

	if b.Label != "" {
		content.WriteString(tuistyles.MetricLabelStyle.Render(b.Label))
		content.WriteString("  ")
		content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(fmt.Sprintf("%.2f%%", b.Percent)))
		content.WriteString("\n")
	}

	filled := b.Filled()
	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	if filled > 0 {
		content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	}
	if empty := b.Width - filled; empty > 0 {
		content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}

	return content.String()
}
