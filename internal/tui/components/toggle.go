package components

import (
	"github.com/naijatax/paye/internal/tui/tuistyles"
)

// Toggle is an on/off switch with a label
type Toggle struct {
	Label   string
	On      bool
	Focused bool
}

// NewToggle creates a toggle in the given state
func NewToggle(label string, on bool) *Toggle {
	return &Toggle{Label: label, On: on}
}

// Flip inverts the toggle
func (t *Toggle) Flip() {
	t.On = !t.On
}

// Render returns "[ ON ] label" styled for focus and state
func (t *Toggle) Render() string {
	state := tuistyles.ToggleOffStyle.Render("[ OFF ]")
	if t.On {
		state = tuistyles.ToggleOnStyle.Render("[ ON  ]")
	}
	label := tuistyles.FieldLabelStyle.Render(t.Label)
	if t.Focused {
		label = tuistyles.FocusedLabelStyle.Render("› " + t.Label)
	}
	return state + " " + label
}
