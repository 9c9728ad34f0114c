package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/naijatax/paye/internal/compare"
	"github.com/naijatax/paye/internal/config"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare a base declaration against other declarations and what-if templates",
	Long: `Compare a base declaration against alternatives from the same file and
against built-in what-if templates applied to the base.

Examples:
  paye compare declarations.yaml --base salaried --with freelancer
  paye compare declarations.yaml --base salaried --template raise_10,with_pension
  paye compare declarations.yaml --base salaried --template raise_25 --format csv
  paye compare --list-templates
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if list, _ := cmd.Flags().GetBool("list-templates"); list {
			registry := compare.CreateBuiltInTemplates()
			fmt.Fprintln(out, "Available templates:")
			for _, name := range registry.List() {
				t, _ := registry.Get(name)
				fmt.Fprintf(out, "  %-14s %s\n", t.Name, t.Description)
			}
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("input file required for comparison (use --list-templates to see available templates)")
		}
		inputFile := args[0]

		cfg, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		baseName, _ := cmd.Flags().GetString("base")
		if baseName == "" {
			if len(cfg.Declarations) == 0 {
				return fmt.Errorf("--base is required")
			}
			baseName = cfg.Declarations[0].Name
		}
		with, _ := cmd.Flags().GetString("with")
		templates, _ := cmd.Flags().GetString("template")
		if all, _ := cmd.Flags().GetBool("all"); all {
			with = strings.Join(otherNames(cfg.DeclarationNames(), baseName), ",")
		}

		rulesFile, _ := cmd.Flags().GetString("rules")
		if rulesFile == "" {
			rulesFile = cfg.RulesFile
		}
		rules, err := loadRules(rulesFile)
		if err != nil {
			return err
		}
		engine, err := newEngine(cmd, rules)
		if err != nil {
			return err
		}

		compSet, err := compare.NewCompareEngine(engine).Compare(context.Background(), cfg, compare.CompareOptions{
			BaseName:     baseName,
			Alternatives: splitList(with),
			Templates:    splitList(templates),
		})
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
		compSet.ConfigPath = inputFile

		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "csv":
			s, err := (&compare.CSVFormatter{}).Format(compSet)
			if err != nil {
				return fmt.Errorf("failed to format CSV: %w", err)
			}
			fmt.Fprint(out, s)
		case "json":
			withReports, _ := cmd.Flags().GetBool("reports")
			s, err := (&compare.JSONFormatter{Pretty: true, IncludeReports: withReports}).Format(compSet)
			if err != nil {
				return fmt.Errorf("failed to format JSON: %w", err)
			}
			fmt.Fprint(out, s)
		case "compact":
			fmt.Fprint(out, (&compare.TableFormatter{}).FormatCompact(compSet))
		case "table", "console", "":
			fmt.Fprint(out, (&compare.TableFormatter{}).Format(compSet))
		default:
			return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", format)
		}
		return nil
	},
}

// splitList parses a comma-separated flag value, dropping empty entries
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func otherNames(names []string, exclude string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != exclude {
			out = append(out, n)
		}
	}
	return out
}

func init() {
	compareCmd.Flags().String("base", "", "Base declaration to compare against (default: first in file)")
	compareCmd.Flags().String("with", "", "Comma-separated declarations from the file to compare")
	compareCmd.Flags().String("template", "", "Comma-separated what-if templates to apply to the base")
	compareCmd.Flags().Bool("all", false, "Compare the base against every other declaration in the file")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	compareCmd.Flags().Bool("reports", false, "Include full reports in JSON output")
	compareCmd.Flags().Bool("list-templates", false, "List all available what-if templates")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
}
