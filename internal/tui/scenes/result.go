package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/output"
	"github.com/naijatax/paye/internal/tui/components"
	"github.com/naijatax/paye/internal/tui/tuistyles"
)

const summaryWidth = 56

// ResultModel shows a computed tax report in a scrollable viewport
type ResultModel struct {
	rules    domain.PAYERules
	report   *domain.TaxReport
	viewport viewport.Model
	width    int
}

// NewResultModel creates an empty result scene
func NewResultModel(rules domain.PAYERules) *ResultModel {
	return &ResultModel{
		rules:    rules,
		viewport: viewport.New(80, 20),
		width:    80,
	}
}

// SetReport replaces the displayed report and scrolls to the top
func (m *ResultModel) SetReport(report *domain.TaxReport) {
	m.report = report
	m.viewport.SetContent(m.render())
	m.viewport.GotoTop()
}

// Report returns the displayed report
func (m *ResultModel) Report() *domain.TaxReport {
	return m.report
}

// SetSize resizes the viewport
func (m *ResultModel) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = max(height, 5)
	if m.report != nil {
		m.viewport.SetContent(m.render())
	}
}

// Update scrolls the viewport
func (m *ResultModel) Update(msg tea.Msg) (*ResultModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the visible part of the report
func (m *ResultModel) View() string {
	if m.report == nil {
		return tuistyles.HintStyle.Render("No calculation yet")
	}
	return m.viewport.View()
}

// Content renders the whole report without the viewport
func (m *ResultModel) Content() string {
	if m.report == nil {
		return ""
	}
	return m.render()
}

func (m *ResultModel) render() string {
	r := m.report
	var b strings.Builder

	b.WriteString(tuistyles.TitleStyle.Render("Your Tax Calculation"))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("Personal Income Tax (PIT) · " + string(r.Category)))
	b.WriteString("\n\n")
	b.WriteString(tuistyles.BannerStyle.Render(output.RegimeHeadline(m.rules)))
	b.WriteString("\n\n")

	cards := []*components.MetricCard{
		components.NewMetricCard("ANNUAL TAX", output.FormatNaira(r.Result.AnnualTax)).
			WithDescription("Total tax for the year").Highlighted(),
		components.NewMetricCard("MONTHLY TAX", output.FormatNaira(r.Result.MonthlyTax)).
			WithDescription("Average per month"),
	}
	b.WriteString(components.MetricGrid(cards, 2))
	b.WriteString("\n\n")

	b.WriteString(components.NewRateBar("EFFECTIVE TAX RATE", r.EffectiveRatePercent.InexactFloat64()).WithWidth(summaryWidth).Render())
	b.WriteString("\n")

	b.WriteString(tuistyles.SectionTitleStyle.Render("Tax Band Breakdown"))
	b.WriteString("\n")
	b.WriteString(components.BandTable(r.Result.Breakdown))
	b.WriteString("\n")

	b.WriteString(tuistyles.SectionTitleStyle.Render("Income Summary"))
	b.WriteString("\n")
	lines := []struct {
		label    string
		amount   string
		negative bool
	}{
		{"Gross Annual Income", output.FormatNaira(r.GrossIncome), false},
		{"Total Deductions", output.FormatNaira(r.TotalDeductions.Neg()), true},
		{"  • Pension Contribution", output.FormatNaira(r.Deductions.Pension), false},
		{"  • NHIS Contribution", output.FormatNaira(r.Deductions.NHIS), false},
		{"  • Rent Relief", output.FormatNaira(r.Deductions.RentRelief), false},
		{"  • Consolidated Relief (CRA)", output.FormatNaira(r.Result.CRA), false},
		{"Taxable Income", output.FormatNaira(r.Result.TaxableIncome), false},
		{"Total Tax", output.FormatNaira(r.Result.AnnualTax.Neg()), true},
	}
	for _, l := range lines {
		b.WriteString(components.SummaryLine(l.label, l.amount, summaryWidth, l.negative))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	net := []*components.MetricCard{
		components.NewMetricCard("NET ANNUAL INCOME", output.FormatNaira(r.NetAnnualIncome)).Highlighted(),
		components.NewMetricCard("NET MONTHLY INCOME", output.FormatNaira(r.NetMonthlyIncome())),
	}
	b.WriteString(components.MetricGrid(net, 2))
	b.WriteString("\n")

	for _, n := range r.Notices {
		b.WriteString("\n")
		b.WriteString(tuistyles.HintStyle.Render("Note: " + n))
	}
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().Width(min(m.width, 76))
	b.WriteString(tuistyles.SectionTitleStyle.Render("Disclaimer"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(tuistyles.SubtitleStyle.Render(output.Disclaimer(m.rules))))

	return b.String()
}
