package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/naijatax/paye/internal/config"
	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/output"
	"github.com/naijatax/paye/internal/tui/components"
	"github.com/naijatax/paye/internal/tui/tuimsg"
	"github.com/naijatax/paye/internal/tui/tuistyles"
)

// Unit says whether a field holds a monthly or an annual amount
type Unit int

const (
	UnitAnnual Unit = iota
	UnitMonthly
)

func (u Unit) String() string {
	if u == UnitMonthly {
		return "/month"
	}
	return "/year"
}

// FieldConfig describes one amount field of the form
type FieldConfig struct {
	Label       string
	Unit        Unit
	Placeholder string
	// Additional fields sit under the collapsible "Additional Income" section
	Additional bool
}

const (
	FieldMonthlySalary = iota
	FieldAnnualRent
	FieldRentalIncome
	FieldInvestmentIncome
	FieldOtherIncome
)

// IncomeFields lists the amount fields in form order, indexed by the Field constants
var IncomeFields = []FieldConfig{
	FieldMonthlySalary:    {Label: "Monthly Gross Salary", Unit: UnitMonthly, Placeholder: "0"},
	FieldAnnualRent:       {Label: "Annual Rent Paid (For Rent Relief)", Unit: UnitAnnual, Placeholder: "0"},
	FieldRentalIncome:     {Label: "Rental Income (Annual)", Unit: UnitAnnual, Placeholder: "0", Additional: true},
	FieldInvestmentIncome: {Label: "Investment Income (Annual)", Unit: UnitAnnual, Placeholder: "0", Additional: true},
	FieldOtherIncome:      {Label: "Other Income (Annual)", Unit: UnitAnnual, Placeholder: "0", Additional: true},
}

type focusKind int

const (
	focusCategory focusKind = iota
	focusField
	focusAdditional
	focusPension
	focusPensionRate
	focusNHIS
	focusSubmit
)

type focusable struct {
	kind  focusKind
	field int
}

type inputKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
}

var inputKeys = inputKeyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "category")),
	Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "category")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
}

// InputModel is the income details form
type InputModel struct {
	rules domain.PAYERules

	name           string
	category       domain.Category
	fields         []textinput.Model
	pensionRate    textinput.Model
	defaultRate    string
	showAdditional bool
	pension        *components.Toggle
	nhis           *components.Toggle

	focus int
	err   error
	width int
}

// NewInputModel creates an empty form for rules
func NewInputModel(rules domain.PAYERules) *InputModel {
	m := &InputModel{
		rules:    rules,
		category: domain.CategoryEmployed,
		pension:  components.NewToggle("Include Pension Contributions", false),
		nhis:     components.NewToggle("Include NHIS Contributions", false),
		width:    80,
	}

	m.fields = make([]textinput.Model, len(IncomeFields))
	for i, f := range IncomeFields {
		m.fields[i] = newAmountInput(f.Placeholder)
	}

	m.defaultRate = rules.Deductions.DefaultPensionRatePercent.String()
	m.pensionRate = textinput.New()
	m.pensionRate.Placeholder = rules.Deductions.DefaultPensionRatePercent.String()
	m.pensionRate.SetValue(m.defaultRate)
	m.pensionRate.Prompt = "% "
	m.pensionRate.CharLimit = 6
	m.pensionRate.Width = 8

	m.focus = m.indexOf(focusable{kind: focusField, field: FieldMonthlySalary})
	m.applyFocus()
	return m
}

func newAmountInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "₦ "
	ti.CharLimit = 20
	ti.Width = 24
	return ti
}

// SetDeclaration fills the form from an existing declaration
func (m *InputModel) SetDeclaration(in domain.IncomeInput) {
	m.name = in.Name
	m.category = in.Category.OrDefault()
	amounts := []decimal.Decimal{
		FieldMonthlySalary:    in.MonthlySalary,
		FieldAnnualRent:       in.AnnualRent,
		FieldRentalIncome:     in.RentalIncome,
		FieldInvestmentIncome: in.InvestmentIncome,
		FieldOtherIncome:      in.OtherIncome,
	}
	for i, a := range amounts {
		if a.IsZero() {
			m.fields[i].SetValue("")
			continue
		}
		m.fields[i].SetValue(a.String())
	}
	m.showAdditional = !in.AdditionalIncome().IsZero()
	m.pension.On = in.PensionEnabled
	m.nhis.On = in.NHISEnabled
	m.pensionRate.SetValue(m.defaultRate)
	if in.PensionRatePercent != nil {
		m.pensionRate.SetValue(in.PensionRatePercent.String())
	}
	m.applyFocus()
}

// SetError shows err above the submit button until the next key press
func (m *InputModel) SetError(err error) {
	m.err = err
}

// SetSize updates the form width
func (m *InputModel) SetSize(width int) {
	m.width = width
}

// Editing reports whether a text field has focus, so single-letter
// shortcuts must not be intercepted
func (m *InputModel) Editing() bool {
	k := m.current().kind
	return k == focusField || k == focusPensionRate
}

// Input builds the declaration from the form. Malformed amounts read as zero,
// and so does a cleared or malformed pension rate: the field starts at the
// default rate, so an empty field is an explicit 0%.
func (m *InputModel) Input() domain.IncomeInput {
	amount := func(i int) decimal.Decimal {
		return config.ParseAmount(m.fields[i].Value())
	}
	in := domain.IncomeInput{
		Name:           m.name,
		Category:       m.category,
		MonthlySalary:  amount(FieldMonthlySalary),
		AnnualRent:     amount(FieldAnnualRent),
		PensionEnabled: m.pension.On,
		NHISEnabled:    m.nhis.On,
	}
	if m.showAdditional {
		in.RentalIncome = amount(FieldRentalIncome)
		in.InvestmentIncome = amount(FieldInvestmentIncome)
		in.OtherIncome = amount(FieldOtherIncome)
	}
	if m.pension.On {
		raw := strings.TrimSuffix(strings.TrimSpace(m.pensionRate.Value()), "%")
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			rate = decimal.Zero
		}
		in.PensionRatePercent = &rate
	}
	return in
}

// focusables lists the focus stops for the current form state
func (m *InputModel) focusables() []focusable {
	stops := []focusable{{kind: focusCategory}}
	for i, f := range IncomeFields {
		if f.Additional {
			continue
		}
		stops = append(stops, focusable{kind: focusField, field: i})
	}
	stops = append(stops, focusable{kind: focusAdditional})
	if m.showAdditional {
		for i, f := range IncomeFields {
			if f.Additional {
				stops = append(stops, focusable{kind: focusField, field: i})
			}
		}
	}
	stops = append(stops, focusable{kind: focusPension})
	if m.pension.On {
		stops = append(stops, focusable{kind: focusPensionRate})
	}
	stops = append(stops, focusable{kind: focusNHIS}, focusable{kind: focusSubmit})
	return stops
}

func (m *InputModel) indexOf(f focusable) int {
	for i, s := range m.focusables() {
		if s == f {
			return i
		}
	}
	return 0
}

func (m *InputModel) current() focusable {
	stops := m.focusables()
	if m.focus >= len(stops) {
		m.focus = len(stops) - 1
	}
	return stops[m.focus]
}

func (m *InputModel) applyFocus() {
	cur := m.current()
	for i := range m.fields {
		if cur.kind == focusField && cur.field == i {
			m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}
	if cur.kind == focusPensionRate {
		m.pensionRate.Focus()
	} else {
		m.pensionRate.Blur()
	}
	m.pension.Focused = cur.kind == focusPension
	m.nhis.Focused = cur.kind == focusNHIS
}

func (m *InputModel) move(delta int) {
	n := len(m.focusables())
	m.focus = (m.focus + delta + n) % n
	m.applyFocus()
}

// toggle flips the focused switch, keeping focus on it
func (m *InputModel) toggle() {
	cur := m.current()
	switch cur.kind {
	case focusCategory:
		m.switchCategory()
	case focusAdditional:
		m.showAdditional = !m.showAdditional
	case focusPension:
		m.pension.Flip()
	case focusNHIS:
		m.nhis.Flip()
	default:
		return
	}
	m.focus = m.indexOf(cur)
	m.applyFocus()
}

func (m *InputModel) switchCategory() {
	if m.category == domain.CategorySelfEmployed {
		m.category = domain.CategoryEmployed
		return
	}
	m.category = domain.CategorySelfEmployed
}

func (m *InputModel) submit() tea.Cmd {
	in := m.Input()
	if err := in.Validate(); err != nil {
		m.err = err
		return nil
	}
	return func() tea.Msg {
		return tuimsg.CalculateRequestedMsg{Input: in}
	}
}

// Update handles key presses for the form
func (m *InputModel) Update(msg tea.Msg) (*InputModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}
	m.err = nil

	cur := m.current()
	switch {
	case key.Matches(keyMsg, inputKeys.Next):
		m.move(1)
		return m, nil
	case key.Matches(keyMsg, inputKeys.Prev):
		m.move(-1)
		return m, nil
	case key.Matches(keyMsg, inputKeys.Submit):
		switch cur.kind {
		case focusCategory, focusAdditional, focusPension, focusNHIS:
			m.toggle()
			return m, nil
		}
		return m, m.submit()
	case key.Matches(keyMsg, inputKeys.Toggle) && !m.Editing():
		m.toggle()
		return m, nil
	case (key.Matches(keyMsg, inputKeys.Left) || key.Matches(keyMsg, inputKeys.Right)) && cur.kind == focusCategory:
		m.switchCategory()
		return m, nil
	}

	return m, m.updateInputs(msg)
}

func (m *InputModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.fields {
		var cmd tea.Cmd
		m.fields[i], cmd = m.fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.pensionRate, cmd = m.pensionRate.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// View renders the form
func (m *InputModel) View() string {
	var b strings.Builder

	b.WriteString(tuistyles.TitleStyle.Render("Enter Your Income Details"))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("All amounts in Nigerian Naira (₦)"))
	b.WriteString("\n\n")
	b.WriteString(tuistyles.BannerStyle.Render("Based on: " + output.RegimeHeadline(m.rules)))
	b.WriteString("\n\n")

	cur := m.current()

	b.WriteString(m.label("Tax Category", cur.kind == focusCategory))
	b.WriteString("\n")
	b.WriteString(m.categorySwitch())
	b.WriteString("\n\n")

	for i, f := range IncomeFields {
		if f.Additional {
			continue
		}
		b.WriteString(m.fieldView(i, cur))
		if i == FieldAnnualRent {
			b.WriteString(tuistyles.HintStyle.Render(fmt.Sprintf("Rent Relief: Lower of %s or %s of rent paid",
				output.FormatNaira(m.rules.Deductions.RentReliefCap), output.FormatRate(m.rules.Deductions.RentReliefRate))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	arrow := "▸"
	if m.showAdditional {
		arrow = "▾"
	}
	b.WriteString(m.label(arrow+" Additional Income (Optional)", cur.kind == focusAdditional))
	b.WriteString("\n\n")
	if m.showAdditional {
		for i, f := range IncomeFields {
			if f.Additional {
				b.WriteString(m.fieldView(i, cur))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString(m.pension.Render())
	b.WriteString("\n")
	if m.pension.On {
		b.WriteString("  ")
		b.WriteString(m.label("Pension Percentage", cur.kind == focusPensionRate))
		b.WriteString(" ")
		b.WriteString(m.pensionRate.View())
		b.WriteString("\n")
	}
	b.WriteString(m.nhis.Render())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(tuistyles.ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	button := tuistyles.ButtonStyle
	if cur.kind == focusSubmit {
		button = tuistyles.FocusedButtonStyle
	}
	b.WriteString(button.Render("Calculate Personal Tax"))

	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}

func (m *InputModel) label(text string, focused bool) string {
	if focused {
		return tuistyles.FocusedLabelStyle.Render("› " + text)
	}
	return tuistyles.FieldLabelStyle.Render(text)
}

func (m *InputModel) fieldView(i int, cur focusable) string {
	f := IncomeFields[i]
	focused := cur.kind == focusField && cur.field == i
	return m.label(f.Label, focused) + "\n" + m.fields[i].View() + " " + tuistyles.HintStyle.Render(f.Unit.String()) + "\n"
}

func (m *InputModel) categorySwitch() string {
	render := func(c domain.Category) string {
		if m.category == c {
			return tuistyles.ToggleOnStyle.Render("(•) " + string(c))
		}
		return tuistyles.ToggleOffStyle.Render("( ) " + string(c))
	}
	return render(domain.CategoryEmployed) + "   " + render(domain.CategorySelfEmployed)
}
