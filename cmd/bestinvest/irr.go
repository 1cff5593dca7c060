package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/bestinvest/internal/breakeven"
	"github.com/rgehrsitz/bestinvest/internal/config"
)

var irrCmd = &cobra.Command{
	Use:   "irr [input-file]",
	Short: "Show IRR solver diagnostics for the prepayment cashflows",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := loadConfiguration(parser, args)
		if err != nil {
			return err
		}

		engine, err := engineFor(cmd)
		if err != nil {
			return err
		}
		req := parser.BuildRequest(cfg)
		mortgage, err := engine.CalcEngine.EvaluatePrepayment(context.Background(), req.Loan)
		if err != nil {
			return err
		}

		result, err := breakeven.NewDefaultSolver().Solve(mortgage.Cashflows)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := (&breakeven.JSONFormatter{}).Format(result)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).Format(result))
		fmt.Fprintf(cmd.OutOrStdout(), "Cashflow months: %d\n", len(mortgage.Cashflows)-1)
		if mortgage.Approximated {
			fmt.Fprintln(cmd.OutOrStdout(), "Annual equivalent falls back to the after-tax loan rate.")
		}
		return nil
	},
}

func init() {
	irrCmd.Flags().Bool("json", false, "Print the solver result as JSON")
}
