package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/naijatax/paye/internal/calculation"
	"github.com/naijatax/paye/internal/config"
	"github.com/naijatax/paye/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints tax across a range of gross incomes as CSV, with the marginal rate
// between consecutive rows, to eyeball band edges after editing a rules file.
func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println("usage: band_sweep [rules-file] [max-gross] [step]")
		return
	}

	rules := domain.DefaultPAYERules()
	if len(os.Args) > 1 && os.Args[1] != "" {
		var err error
		if rules, err = config.LoadRulesFromFile(os.Args[1]); err != nil {
			panic(err)
		}
	}
	maxGross := intArg(2, 20_000_000)
	step := intArg(3, 500_000)
	if step <= 0 {
		panic("step must be positive")
	}

	calc := calculation.NewPAYECalculator(rules)

	fmt.Println("Gross,CRA,Taxable,AnnualTax,MonthlyTax,EffectivePct,MarginalPct,Bands")
	prevGross, prevTax := decimal.Zero, decimal.Zero
	for g := int64(0); g <= maxGross; g += step {
		gross := decimal.NewFromInt(g)
		res := calc.ComputeTax(gross)

		effective := decimal.Zero
		if gross.IsPositive() {
			effective = res.AnnualTax.Div(gross).Mul(decimal.NewFromInt(100))
		}
		marginal := decimal.Zero
		if g > 0 {
			marginal = res.AnnualTax.Sub(prevTax).Div(gross.Sub(prevGross)).Mul(decimal.NewFromInt(100))
		}

		fmt.Printf("%s,%s,%s,%s,%s,%s,%s,%d\n",
			gross.StringFixed(0),
			res.CRA.StringFixed(2),
			res.TaxableIncome.StringFixed(2),
			res.AnnualTax.StringFixed(2),
			res.MonthlyTax.StringFixed(2),
			effective.StringFixed(2),
			marginal.StringFixed(2),
			len(res.Breakdown),
		)
		prevGross, prevTax = gross, res.AnnualTax
	}
}

func intArg(i int, fallback int64) int64 {
	if len(os.Args) <= i {
		return fallback
	}
	v, err := strconv.ParseInt(os.Args[i], 10, 64)
	if err != nil {
		panic(fmt.Sprintf("invalid argument %q: %v", os.Args[i], err))
	}
	return v
}
