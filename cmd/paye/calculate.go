package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/naijatax/paye/internal/config"
	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate PAYE for a declaration file or for amounts given as flags",
	Long: `Calculate PAYE for every declaration in a YAML file, or for a single
declaration described with flags.

Examples:
  paye calculate declarations.yaml
  paye calculate declarations.yaml --name salaried --format json
  paye calculate --monthly 500,000 --rent 1,500,000 --pension --nhis
  paye calculate --gross 12000000 --category self-employed --format html -o tax.html
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rulesFile, _ := cmd.Flags().GetString("rules")
		name, _ := cmd.Flags().GetString("name")

		var cfg *domain.Configuration
		if len(args) == 1 {
			parsed, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			cfg = parsed
			if rulesFile == "" {
				rulesFile = cfg.RulesFile
			}
		} else {
			in, err := declarationFromFlags(cmd)
			if err != nil {
				return err
			}
			cfg = &domain.Configuration{Declarations: []domain.IncomeInput{in}}
			name = ""
		}

		rules, err := loadRules(rulesFile)
		if err != nil {
			return err
		}
		engine, err := newEngine(cmd, rules)
		if err != nil {
			return err
		}

		ctx := context.Background()
		var reports []domain.TaxReport
		if name != "" {
			report, err := engine.RunNamed(ctx, cfg, name)
			if err != nil {
				return err
			}
			reports = []domain.TaxReport{*report}
		} else {
			reports, err = engine.RunAll(ctx, cfg)
			if err != nil {
				return err
			}
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.NewFormatter(format, rules)
		if f == nil {
			return fmt.Errorf("unknown output format %q (valid: %s; aliases: %s)", format,
				strings.Join(output.AvailableFormatterNames(), ", "), strings.Join(output.AvailableFormatAliases(), ", "))
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			return output.WriteFormatted(cmd.OutOrStdout(), f, reports)
		}
		if err := output.WriteFormattedFile(outputFile, f, reports); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", outputFile)
		return nil
	},
}

var amountFlags = []string{"gross", "monthly", "rent", "rental", "investment", "other"}

// declarationFromFlags builds a declaration from the amount flags. Amounts
// accept thousands separators and a ₦ or NGN prefix.
func declarationFromFlags(cmd *cobra.Command) (domain.IncomeInput, error) {
	given := false
	for _, f := range amountFlags {
		if cmd.Flags().Changed(f) {
			given = true
		}
	}
	if !given {
		return domain.IncomeInput{}, fmt.Errorf("provide an input file or at least one of --%s", strings.Join(amountFlags, ", --"))
	}

	amount := func(flag string) decimal.Decimal {
		raw, _ := cmd.Flags().GetString(flag)
		return config.ParseAmount(raw)
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = "cli"
	}
	categoryName, _ := cmd.Flags().GetString("category")
	category, err := parseCategory(categoryName)
	if err != nil {
		return domain.IncomeInput{}, err
	}

	in := domain.IncomeInput{
		Name:             name,
		Category:         category,
		MonthlySalary:    amount("monthly"),
		AnnualRent:       amount("rent"),
		RentalIncome:     amount("rental"),
		InvestmentIncome: amount("investment"),
		// an annual gross figure is not split into months
		OtherIncome: amount("other").Add(amount("gross")),
	}
	in.PensionEnabled, _ = cmd.Flags().GetBool("pension")
	in.NHISEnabled, _ = cmd.Flags().GetBool("nhis")

	if cmd.Flags().Changed("pension-rate") {
		raw, _ := cmd.Flags().GetString("pension-rate")
		rate, err := decimal.NewFromString(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
		if err != nil {
			return domain.IncomeInput{}, fmt.Errorf("invalid --pension-rate %q: %w", raw, err)
		}
		in.PensionRatePercent = &rate
		in.PensionEnabled = true
	}

	return in, in.Validate()
}

func parseCategory(name string) (domain.Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "employed":
		return domain.CategoryEmployed, nil
	case "self-employed", "self_employed", "selfemployed":
		return domain.CategorySelfEmployed, nil
	}
	return "", fmt.Errorf("unknown category %q (valid: employed, self-employed)", name)
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a declaration file and the rules it references",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		cfg, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		rulesFile, _ := cmd.Flags().GetString("rules")
		if rulesFile == "" {
			rulesFile = cfg.RulesFile
		}
		if _, err := loadRules(rulesFile); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid (%d declaration(s))\n", inputFile, len(cfg.Declarations))
		return nil
	},
}

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Show the active tax bands and relief parameters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rulesFile, _ := cmd.Flags().GetString("rules")
		rules, err := loadRules(rulesFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "json":
			data, err := json.MarshalIndent(rules, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		case "yaml", "yml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(rules); err != nil {
				return err
			}
			return enc.Close()
		case "console", "table", "":
			fmt.Fprintln(out, output.RegimeHeadline(rules))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "TAX BANDS")
			for i, b := range rules.Bands {
				fmt.Fprintf(out, "  %d. %-28s %5s\n", i+1,
					output.BandLabel(domain.TaxBandBreakdown{BandWidth: b.Width, Rate: b.Rate}), output.FormatRate(b.Rate))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "ASSUMPTIONS")
			for _, a := range output.Assumptions(rules) {
				fmt.Fprintf(out, "  • %s\n", a)
			}
		default:
			return fmt.Errorf("unknown format %q (valid: console, json, yaml)", format)
		}
		return nil
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	calculateCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	calculateCmd.Flags().String("name", "", "Declaration to calculate from the file, or the name used for flag input")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	calculateCmd.Flags().String("gross", "", "Total annual gross income")
	calculateCmd.Flags().String("monthly", "", "Monthly salary")
	calculateCmd.Flags().String("rent", "", "Annual rent paid")
	calculateCmd.Flags().String("rental", "", "Annual rental income")
	calculateCmd.Flags().String("investment", "", "Annual investment income")
	calculateCmd.Flags().String("other", "", "Other annual income")
	calculateCmd.Flags().Bool("pension", false, "Show the pension contribution")
	calculateCmd.Flags().String("pension-rate", "", "Pension contribution rate in percent (implies --pension)")
	calculateCmd.Flags().Bool("nhis", false, "Show the NHIS contribution")
	calculateCmd.Flags().String("category", "employed", "Taxpayer category (employed, self-employed)")

	bandsCmd.Flags().StringP("format", "f", "console", "Output format (console, json, yaml)")
}
