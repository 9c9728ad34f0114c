package tui

// View is the screen the app is showing. The engine never sees it.
type View int

const (
	ViewInput View = iota
	ViewResult
)

func (v View) String() string {
	switch v {
	case ViewInput:
		return "Income Details"
	case ViewResult:
		return "Tax Calculation"
	default:
		return "Unknown"
	}
}
