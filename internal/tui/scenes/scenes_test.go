package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naijatax/paye/internal/calculation"
	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/tui/tuimsg"
)

func typeText(m *InputModel, s string) *InputModel {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func focusOn(m *InputModel, kind focusKind, field int) {
	m.focus = m.indexOf(focusable{kind: kind, field: field})
	m.applyFocus()
}

func TestInputModel_StartsOnSalary(t *testing.T) {
	m := NewInputModel(domain.DefaultPAYERules())

	assert.True(t, m.Editing())
	assert.Equal(t, focusable{kind: focusField, field: FieldMonthlySalary}, m.current())
	assert.Contains(t, m.View(), "Monthly Gross Salary")
	assert.Contains(t, m.View(), "Rent Relief: Lower of ₦500,000 or 20% of rent paid")
	assert.NotContains(t, m.View(), "Rental Income (Annual)", "additional income starts collapsed")
}

func TestInputModel_TypingAndSubmit(t *testing.T) {
	m := NewInputModel(domain.DefaultPAYERules())
	m = typeText(m, "500,000")

	in := m.Input()
	assert.True(t, in.MonthlySalary.Equal(decimal.NewFromInt(500_000)))
	assert.Equal(t, domain.CategoryEmployed, in.Category)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(tuimsg.CalculateRequestedMsg)
	require.True(t, ok)
	assert.True(t, msg.Input.GrossAnnualIncome().Equal(decimal.NewFromInt(6_000_000)))
	assert.Nil(t, m.err)
}

func TestInputModel_FocusCycles(t *testing.T) {
	m := NewInputModel(domain.DefaultPAYERules())
	n := len(m.focusables())

	for i := 0; i < n; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, focusable{kind: focusField, field: FieldMonthlySalary}, m.current())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusCategory, m.current().kind)
}

func TestInputModel_Toggles(t *testing.T) {
	m := NewInputModel(domain.DefaultPAYERules())
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	focusOn(m, focusCategory, 0)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.CategorySelfEmployed, m.Input().Category)

	focusOn(m, focusPension, 0)
	assert.False(t, m.Editing())
	m, _ = m.Update(space)
	assert.True(t, m.Input().PensionEnabled)
	require.NotNil(t, m.Input().PensionRatePercent)
	assert.True(t, m.Input().PensionRatePercent.Equal(decimal.NewFromInt(8)), "field starts at the default rate")
	assert.Equal(t, focusPension, m.current().kind, "focus stays on the toggle")

	// the pension rate field appears right after the toggle
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusPensionRate, m.current().kind)
	m.pensionRate.SetValue("")
	m = typeText(m, "10")
	require.NotNil(t, m.Input().PensionRatePercent)
	assert.True(t, m.Input().PensionRatePercent.Equal(decimal.NewFromInt(10)))

	focusOn(m, focusNHIS, 0)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Input().NHISEnabled, "enter flips a focused toggle")
}

func TestInputModel_AdditionalIncome(t *testing.T) {
	m := NewInputModel(domain.DefaultPAYERules())

	focusOn(m, focusAdditional, 0)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.showAdditional)
	assert.Contains(t, m.View(), "Investment Income (Annual)")

	focusOn(m, focusField, FieldOtherIncome)
	m = typeText(m, "₦200,000")
	assert.True(t, m.Input().OtherIncome.Equal(decimal.NewFromInt(200_000)))

	// collapsing drops the additional amounts from the declaration
	focusOn(m, focusAdditional, 0)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Input().OtherIncome.IsZero())
}

func TestInputModel_ClearedPensionRateIsZero(t *testing.T) {
	m := NewInputModel(domain.DefaultPAYERules())
	m.SetDeclaration(domain.IncomeInput{Name: "x", MonthlySalary: decimal.NewFromInt(100_000), PensionEnabled: true})

	for _, raw := range []string{"", "abc"} {
		m.pensionRate.SetValue(raw)
		in := m.Input()
		require.NotNil(t, in.PensionRatePercent, "raw %q", raw)
		assert.True(t, in.PensionRatePercent.IsZero(), "raw %q", raw)

		report, err := calculation.NewCalculationEngine().Run(t.Context(), in)
		require.NoError(t, err)
		assert.True(t, report.Deductions.Pension.IsZero(), "raw %q", raw)
	}
}

func TestInputModel_InvalidPensionRate(t *testing.T) {
	m := NewInputModel(domain.DefaultPAYERules())
	rate := decimal.NewFromInt(150)
	m.SetDeclaration(domain.IncomeInput{Name: "x", PensionEnabled: true, PensionRatePercent: &rate})

	focusOn(m, focusSubmit, 0)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "pension rate percent")

	// any key clears the error
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, m.err)
}

func TestInputModel_SetDeclaration(t *testing.T) {
	m := NewInputModel(domain.DefaultPAYERules())
	in := domain.IncomeInput{
		Name:             "freelancer",
		Category:         domain.CategorySelfEmployed,
		MonthlySalary:    decimal.NewFromInt(100_000),
		InvestmentIncome: decimal.NewFromInt(250_000),
		NHISEnabled:      true,
	}
	m.SetDeclaration(in)

	got := m.Input()
	assert.Equal(t, "freelancer", got.Name)
	assert.Equal(t, domain.CategorySelfEmployed, got.Category)
	assert.True(t, got.GrossAnnualIncome().Equal(in.GrossAnnualIncome()))
	assert.True(t, got.NHISEnabled)
	assert.True(t, m.showAdditional)
}

func TestResultModel(t *testing.T) {
	rules := domain.DefaultPAYERules()
	report, err := calculation.NewCalculationEngine().Run(t.Context(), domain.IncomeInput{
		Name:           "ada",
		MonthlySalary:  decimal.NewFromInt(500_000),
		PensionEnabled: true,
	})
	require.NoError(t, err)

	m := NewResultModel(rules)
	assert.Contains(t, m.View(), "No calculation yet")

	m.SetSize(100, 200)
	m.SetReport(report)
	assert.Same(t, report, m.Report())

	content := m.Content()
	assert.Contains(t, content, "₦896,000")
	assert.Contains(t, content, "Balance (Top Rate)")
	assert.Contains(t, content, "Consolidated Relief (CRA)")
	assert.Contains(t, content, "Note: ")
	assert.Contains(t, content, "Disclaimer")
	assert.Contains(t, m.View(), "Your Tax Calculation")
}

func TestResultModel_TaxFree(t *testing.T) {
	report, err := calculation.NewCalculationEngine().Run(t.Context(), domain.IncomeInput{MonthlySalary: decimal.NewFromInt(10_000)})
	require.NoError(t, err)

	m := NewResultModel(domain.DefaultPAYERules())
	m.SetReport(report)
	assert.Contains(t, m.Content(), "No taxable income after relief")
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "/month", UnitMonthly.String())
	assert.Equal(t, "/year", UnitAnnual.String())
}
