package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/naijatax/paye/internal/calculation"
	"github.com/naijatax/paye/internal/config"
	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Open the interactive calculator",
	Long: `Open the interactive calculator. When a declaration file is given, the
form starts filled with its first declaration (or the one named with --name).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rulesFile, _ := cmd.Flags().GetString("rules")

		var prefill *domain.IncomeInput
		if len(args) == 1 {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if rulesFile == "" {
				rulesFile = cfg.RulesFile
			}
			prefill = &cfg.Declarations[0]
			if name, _ := cmd.Flags().GetString("name"); name != "" {
				if prefill, err = cfg.FindDeclaration(name); err != nil {
					return err
				}
			}
		}

		rules, err := loadRules(rulesFile)
		if err != nil {
			return err
		}
		model := newTUIModel(rules, prefill)

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	},
}

// newTUIModel builds the app model. The engine stays silent because log
// lines would corrupt the alternate screen.
func newTUIModel(rules domain.PAYERules, prefill *domain.IncomeInput) tui.Model {
	model := tui.NewModel(calculation.NewCalculationEngineWithRules(rules), rules)
	if prefill != nil {
		model = model.WithDeclaration(*prefill)
	}
	return model
}

func init() {
	tuiCmd.Flags().String("name", "", "Declaration to pre-fill the form with")
}
