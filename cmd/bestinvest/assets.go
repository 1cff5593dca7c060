package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/marketdata"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the asset dataset with per-scenario returns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("assets")
		ds, err := marketdata.LoadOrEmbedded(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\nUsing the embedded asset dataset.\n", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), renderAssets(ds))
		return nil
	},
}

func renderAssets(ds *marketdata.Dataset) string {
	multipliers := ds.Multipliers()
	info := ds.Info()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Ticker", "Name", "Conservative", "Moderate", "Aggressive", "Dividend Yield")
	for _, a := range ds.Profiles() {
		row := []string{a.Ticker, a.Name}
		for _, s := range domain.AllScenarios {
			row = append(row, compare.Percent(compare.ScenarioReturn(a.BaselineAnnualReturn, multipliers.For(s))))
		}
		row = append(row, compare.Percent(a.DividendYield))
		t.Row(row...)
	}

	var sb strings.Builder
	sb.WriteString("ASSET DATASET\n")
	sb.WriteString(t.String())
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Market multipliers: conservative x%.2f, moderate x%.2f, aggressive x%.2f\n",
		multipliers.Conservative, multipliers.Moderate, multipliers.Aggressive))
	sb.WriteString(fmt.Sprintf("Returns as of: %s\n", info.SourceAsOf))
	if info.Methodology != "" {
		sb.WriteString(fmt.Sprintf("Methodology: %s\n", info.Methodology))
	}
	if len(info.SourceLinks) > 0 {
		sb.WriteString("Sources:\n")
		for _, link := range info.SourceLinks {
			sb.WriteString("  " + link + "\n")
		}
	}
	return sb.String()
}

func init() {
	assetsCmd.Flags().String("assets", "", "Path to the asset dataset JSON (default: embedded dataset)")
}
