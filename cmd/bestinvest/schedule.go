package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/bestinvest/internal/config"
	"github.com/rgehrsitz/bestinvest/internal/output"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule [input-file]",
	Short: "Print the monthly amortization schedule",
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

		withPrepayment, _ := cmd.Flags().GetBool("with-prepayment")
		req := parser.BuildRequest(cfg)
		schedule, err := engine.CalcEngine.Schedule(context.Background(), req.Loan, withPrepayment)
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		f := output.ScheduleFormatter{Limit: limit}
		if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
			return f.WriteCSV(cmd.OutOrStdout(), schedule)
		}
		return f.WriteTable(cmd.OutOrStdout(), schedule)
	},
}

func init() {
	scheduleCmd.Flags().Bool("with-prepayment", false, "Apply the lump sum to principal in month one")
	scheduleCmd.Flags().Int("limit", 24, "Maximum number of months to print (0 prints all)")
	scheduleCmd.Flags().Bool("csv", false, "Write CSV instead of a table")
}
