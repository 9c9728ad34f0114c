package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/naijatax/paye/internal/calculation"
	"github.com/naijatax/paye/internal/config"
	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "paye",
	Short: "Nigerian PAYE personal income tax calculator",
	Long: `Calculate Nigerian personal income tax (PAYE) under the Nigeria Tax Act 2025.

The Consolidated Relief Allowance is deducted from gross income and the
remainder is taxed across the progressive bands. Pension, NHIS and rent
relief are reported for information only.`,
	SilenceUsage: true,
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "paye %s (commit %s, built %s)\n", version, commit, date)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				if info := buildInfo(); info != "" {
					fmt.Fprintln(cmd.OutOrStdout(), info)
				}
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// loadRules returns the rules in path, or the built-in regime when path is empty
func loadRules(path string) (domain.PAYERules, error) {
	if path == "" {
		return domain.DefaultPAYERules(), nil
	}
	rules, err := config.LoadRulesFromFile(path)
	if err != nil {
		return domain.PAYERules{}, err
	}
	return rules, nil
}

// newEngine builds an engine for rules with CLI logging on stderr
func newEngine(cmd *cobra.Command, rules domain.PAYERules) (*calculation.CalculationEngine, error) {
	debugMode, _ := cmd.Flags().GetBool("debug")

	logger, err := logging.NewCLI(debugMode)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewCalculationEngineWithRules(rules)
	engine.SetLogger(logger)
	engine.Debug = debugMode
	return engine, nil
}

func init() {
	rootCmd.PersistentFlags().String("rules", "", "Path to a rules file overriding the built-in band table")

	v := versionCmd()
	v.Flags().BoolP("verbose", "v", false, "Include module build information")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(bandsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(grossUpCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
