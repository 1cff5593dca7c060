package compare

import (
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct {
	// Scenarios limits the detailed breakdown; empty shows the active scenario only
	Scenarios []domain.Scenario
}

// Format generates the ranked tables for each scenario and the breakdown
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder
	a := result.Analysis

	sb.WriteString("MORTGAGE PREPAYMENT VS INVESTING\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(MortgageSummary(a) + "\n")
	sb.WriteString(MortgageDetail(a) + "\n")
	sb.WriteString(TaxNote(a) + "\n")
	if a.Mortgage.Approximated {
		sb.WriteString("Note: no internal rate of return was found; the after-tax loan rate is used instead.\n")
	}
	sb.WriteString("\n")

	nameWidth := 22
	numWidth := 14

	sb.WriteString("TOP RANKED OPTIONS (AFTER TAX)\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-*s %-8s %*s %*s %*s\n",
		14, "Scenario", "Ticker",
		numWidth, "After-Tax Ann.",
		numWidth, "Nominal",
		numWidth, "Vs Mortgage"))
	for _, v := range result.Views {
		for _, row := range v.Top {
			sb.WriteString(fmt.Sprintf("%-*s %-8s %*s %*s %*s\n",
				14, v.Scenario.Title(), row.Ticker,
				numWidth, Percent(row.EffectiveAfterTaxAnnual),
				numWidth, "$"+tf.formatDecimal(row.ProjectedAfterTax),
				numWidth, tf.deltaSymbol(row.DeltaAfterTax)+"$"+tf.formatDecimal(abs(row.DeltaAfterTax))))
		}
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	scenarios := tf.Scenarios
	if len(scenarios) == 0 {
		scenarios = []domain.Scenario{a.Request.ViewScenario}
	}
	for _, s := range scenarios {
		v, ok := result.View(s)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("\nDETAILED BREAKDOWN (%s)\n", strings.ToUpper(s.Title())))
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
			nameWidth, "Asset",
			10, "Annual",
			numWidth, "After-Tax Ann.",
			numWidth, "Nominal",
			numWidth, "Vs Mortgage"))
		for _, row := range v.Ranked {
			sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
				nameWidth, tf.truncate(row.Ticker+" "+row.Name, nameWidth),
				10, Percent(row.AnnualReturnUsed),
				numWidth, Percent(row.EffectiveAfterTaxAnnual),
				numWidth, "$"+tf.formatDecimal(row.ProjectedAfterTax),
				numWidth, tf.deltaSymbol(row.DeltaAfterTax)+"$"+tf.formatDecimal(abs(row.DeltaAfterTax))))
		}
		if v.QuickResult != "" {
			sb.WriteString("\n" + v.QuickResult + "\n")
		}
	}

	if len(a.Priorities) > 0 {
		sb.WriteString("\nPRIORITIES\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, p := range a.Priorities {
			sb.WriteString(fmt.Sprintf("• %s\n", p))
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatCompact creates a single-line summary of the best option per scenario
func (tf *TableFormatter) FormatCompact(result *Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mortgage: %s | ", Percent(result.Analysis.Mortgage.AnnualEquivalent)))

	for i, v := range result.Views {
		if i > 0 {
			sb.WriteString(" | ")
		}
		if len(v.Top) == 0 {
			sb.WriteString(fmt.Sprintf("%s: -", v.Scenario.Title()))
			continue
		}
		best := v.Top[0]
		sb.WriteString(fmt.Sprintf("%s: %s %s$%s", v.Scenario.Title(), best.Ticker,
			tf.deltaSymbol(best.DeltaAfterTax), tf.formatDecimal(abs(best.DeltaAfterTax))))
	}
	return sb.String()
}

// formatDecimal formats an amount for display (in thousands)
func (tf *TableFormatter) formatDecimal(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return NotAvailable
	}
	d := decimal.NewFromFloat(x)
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a sign prefix for a delta against the mortgage
func (tf *TableFormatter) deltaSymbol(delta float64) string {
	if delta > 0 {
		return "+"
	} else if delta < 0 {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
