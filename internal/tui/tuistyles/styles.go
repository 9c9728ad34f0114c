// Package tuistyles holds the lipgloss palette and styles shared by the
// TUI scenes and components.
package tuistyles

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#0F766E") // naira green
	ColorSecondary = lipgloss.Color("#1F2937")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorDanger    = lipgloss.Color("#EF4444")
	ColorInfo      = lipgloss.Color("#3B82F6")

	ColorForeground = lipgloss.Color("#F9FAFB")
	ColorMuted      = lipgloss.Color("#9CA3AF")
	ColorBorder     = lipgloss.Color("#4B5563")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorPrimary).
			PaddingLeft(1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			PaddingTop(1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HighlightCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground).
				MarginTop(1)

	FieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	FocusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	HintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorMuted)

	MetricLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	PositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	NegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ToggleOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	ToggleOffStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorSecondary).
			Padding(0, 3)

	FocusedButtonStyle = ButtonStyle.
				Background(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorMuted)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)
)

// AmountStyle colours deductions red and everything else plain
func AmountStyle(negative bool) lipgloss.Style {
	if negative {
		return NegativeStyle
	}
	return MetricValueStyle
}
