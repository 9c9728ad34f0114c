package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naijatax/paye/internal/calculation"
	"github.com/naijatax/paye/internal/config"
	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/tui"
)

func main() {
	rules := domain.DefaultPAYERules()
	model := tui.NewModel(calculation.NewCalculationEngine(), rules)

	// optional declaration file to pre-fill the form
	if len(os.Args) > 1 {
		cfg, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if cfg.RulesFile != "" {
			if rules, err = config.LoadRulesFromFile(cfg.RulesFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			model = tui.NewModel(calculation.NewCalculationEngineWithRules(rules), rules)
		}
		model = model.WithDeclaration(cfg.Declarations[0])
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
