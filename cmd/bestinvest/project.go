package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/bestinvest/internal/calculation"
	"github.com/rgehrsitz/bestinvest/internal/output"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a single after-tax investment outcome",
	Long: `Project a single after-tax investment outcome. Rates are percentages.

Example:
  bestinvest project --principal 20000 --years 30 --return 10 --dividend-yield 1.5
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		principal, _ := flags.GetFloat64("principal")
		years, _ := flags.GetFloat64("years")
		annual, _ := flags.GetFloat64("return")
		yield, _ := flags.GetFloat64("dividend-yield")
		includeDividends, _ := flags.GetBool("include-dividends")
		qdiv, _ := flags.GetFloat64("qdiv")
		ltcg, _ := flags.GetFloat64("ltcg")
		liquidate, _ := flags.GetBool("liquidate")
		inflation, _ := flags.GetFloat64("inflation")

		if principal <= 0 {
			return fmt.Errorf("principal must be greater than 0")
		}
		if years <= 0 {
			return fmt.Errorf("years must be greater than 0")
		}

		engine, err := engineFor(cmd)
		if err != nil {
			return err
		}

		in := calculation.ProjectionInput{
			Principal:          principal,
			Years:              years,
			AnnualTotalReturn:  annual / 100,
			DividendYield:      yield / 100,
			IncludeDividends:   includeDividends,
			QdivTaxRate:        qdiv / 100,
			LtcgTaxRate:        ltcg / 100,
			LiquidateAtHorizon: liquidate,
			InflationRate:      inflation / 100,
		}
		res := engine.CalcEngine.Project(in)

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "INVESTMENT PROJECTION")
		fmt.Fprintln(w, "=====================")
		fmt.Fprintf(w, "Principal:                %s over %.1f years\n", output.FormatCurrency(principal), years)
		fmt.Fprintf(w, "Annual total return:      %s (dividend yield %s)\n", output.FormatPercentage(in.AnnualTotalReturn), output.FormatPercentage(in.DividendYield))
		fmt.Fprintf(w, "Nominal after tax:        %s\n", output.FormatCurrency(res.NominalAfterTax))
		fmt.Fprintf(w, "Real after tax:           %s\n", output.FormatCurrency(res.RealAfterTax))
		fmt.Fprintf(w, "After-tax annualized:     %s\n", output.FormatPercentage(res.EffectiveAfterTaxAnnual))
		fmt.Fprintf(w, "Liquidation tax:          %s\n", output.FormatCurrency(res.LiquidationTax))
		if !includeDividends {
			fmt.Fprintf(w, "Dividends held as cash:   %s\n", output.FormatCurrency(res.DividendCash))
		}
		return nil
	},
}

func init() {
	projectCmd.Flags().Float64("principal", 20000, "Amount invested now")
	projectCmd.Flags().Float64("years", 30, "Holding period in years")
	projectCmd.Flags().Float64("return", 7, "Annual total return percent, dividends included")
	projectCmd.Flags().Float64("dividend-yield", 0, "Annual dividend yield percent")
	projectCmd.Flags().Bool("include-dividends", true, "Reinvest net dividends")
	projectCmd.Flags().Float64("qdiv", 15, "Qualified dividend tax rate percent")
	projectCmd.Flags().Float64("ltcg", 15, "Long-term capital gains tax rate percent")
	projectCmd.Flags().Bool("liquidate", true, "Apply capital gains tax at the horizon")
	projectCmd.Flags().Float64("inflation", 3, "Annual inflation percent")
}
