package compare

import (
	"encoding/csv"
	"strings"

	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter formats comparison rows as CSV, ranked within each scenario
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(result *Result) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Rank",
		"Ticker",
		"Name",
		"Annual Return Used",
		"After-Tax Annualized",
		"Nominal After Tax",
		"Real After Tax",
		"Vs Mortgage",
		"Vs Mortgage Real",
		"Goal Gap",
		"Liquidation Tax",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, v := range result.Views {
		for i, row := range v.Ranked {
			if err := writer.Write(cf.formatRow(row, i+1)); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison row as a CSV record
func (cf *CSVFormatter) formatRow(row domain.ComparisonRow, rank int) []string {
	return []string{
		string(row.Scenario),
		decimal.NewFromInt(int64(rank)).String(),
		row.Ticker,
		row.Name,
		rate(row.AnnualReturnUsed),
		rate(row.EffectiveAfterTaxAnnual),
		money(row.ProjectedAfterTax),
		money(row.ProjectedRealAfterTax),
		money(row.DeltaAfterTax),
		money(row.DeltaRealAfterTax),
		money(row.GoalGapAfterTax),
		money(row.LiquidationTax),
	}
}

func money(x float64) string { return Fixed(x, 2) }

func rate(x float64) string { return Fixed(x, 6) }
