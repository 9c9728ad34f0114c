package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/naijatax/paye/internal/config"
	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/grossup"
	"github.com/spf13/cobra"
)

var grossUpCmd = &cobra.Command{
	Use:   "gross-up",
	Short: "Find the gross income that leaves a target net income after tax",
	Long: `Find the gross income whose net income after PAYE, pension and NHIS
matches a target.

Examples:
  paye gross-up --net 5,104,000
  paye gross-up --net 400000 --monthly --pension --nhis
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rawNet, _ := cmd.Flags().GetString("net")
		if strings.TrimSpace(rawNet) == "" {
			return fmt.Errorf("--net is required")
		}

		categoryName, _ := cmd.Flags().GetString("category")
		category, err := parseCategory(categoryName)
		if err != nil {
			return err
		}
		req := grossup.Request{
			TargetNet: config.ParseAmount(rawNet),
			Basis:     grossup.BasisAnnual,
			Template:  domain.IncomeInput{Name: "gross-up", Category: category},
		}
		if monthly, _ := cmd.Flags().GetBool("monthly"); monthly {
			req.Basis = grossup.BasisMonthly
		}
		req.Template.PensionEnabled, _ = cmd.Flags().GetBool("pension")
		req.Template.NHISEnabled, _ = cmd.Flags().GetBool("nhis")
		req.MaxIterations, _ = cmd.Flags().GetInt("max-iterations")

		rulesFile, _ := cmd.Flags().GetString("rules")
		rules, err := loadRules(rulesFile)
		if err != nil {
			return err
		}
		engine, err := newEngine(cmd, rules)
		if err != nil {
			return err
		}

		result, err := grossup.NewDefaultSolver(engine).Solve(context.Background(), req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "json":
			s, err := (&grossup.JSONFormatter{Pretty: true}).Format(result)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s)
		case "table", "console", "":
			fmt.Fprint(out, (&grossup.TableFormatter{}).Format(result))
		default:
			return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
		}
		return nil
	},
}

func init() {
	grossUpCmd.Flags().String("net", "", "Target net income")
	grossUpCmd.Flags().Bool("monthly", false, "Treat --net as a monthly figure")
	grossUpCmd.Flags().String("category", "employed", "Taxpayer category (employed, self-employed)")
	grossUpCmd.Flags().Bool("pension", false, "Deduct the default pension contribution from net income")
	grossUpCmd.Flags().Bool("nhis", false, "Deduct the NHIS contribution from net income")
	grossUpCmd.Flags().Int("max-iterations", 0, "Bisection iteration limit (0 uses the solver default)")
	grossUpCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	grossUpCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
}
