package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/domain"
)

// ConsoleVerboseFormatter renders the full detailed report
type ConsoleVerboseFormatter struct {
	Now func() time.Time
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(result *compare.Result) ([]byte, error) {
	var buf bytes.Buffer
	a := result.Analysis
	req := a.Request
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "BESTINVESTMENT DETAILED REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintf(&buf, "Generated: %s\n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&buf, "Active Scenario Tab: %s\n", req.ViewScenario.Title())
	fmt.Fprintln(&buf)

	section(&buf, "INPUTS")
	fmt.Fprintf(&buf, "Mortgage balance: %s\n", FormatCurrency(req.Loan.Terms.Balance))
	fmt.Fprintf(&buf, "Mortgage APR: %s\n", FormatPercentage(req.Loan.Terms.AnnualRate))
	fmt.Fprintf(&buf, "Months analyzed: %d\n", req.Loan.Terms.Months)
	fmt.Fprintf(&buf, "Amount allocated now: %s\n", FormatCurrency(req.Loan.ExtraPrincipal))
	fmt.Fprintf(&buf, "Include tax breaks from mortgage interest: %s\n", yesNo(req.Deductible))
	fmt.Fprintf(&buf, "Include dividends (reinvested): %s\n", yesNo(req.Comparison.IncludeDividends))
	fmt.Fprintf(&buf, "LTCG tax assumed: %s | Qualified dividend tax assumed: %s\n",
		FormatPercentage(req.Comparison.LtcgTaxRate), FormatPercentage(req.Comparison.QdivTaxRate))
	fmt.Fprintf(&buf, "Inflation assumed: %s | Liquidation at horizon: %s\n",
		FormatPercentage(req.Comparison.InflationRate), yesNo(req.Comparison.LiquidateAtHorizon))
	if req.Loan.MonthlyPMI > 0 {
		fmt.Fprintf(&buf, "Monthly PMI: %s\n", FormatCurrency(req.Loan.MonthlyPMI))
	}
	fmt.Fprintln(&buf, compare.TaxNote(a))
	fmt.Fprintln(&buf)

	section(&buf, "MORTGAGE ANALYSIS")
	m := a.Mortgage
	fmt.Fprintf(&buf, "Mortgage equivalent future value (nominal): %s\n", FormatCurrency(m.FutureValue))
	fmt.Fprintf(&buf, "Mortgage equivalent future value (real): %s\n", FormatCurrency(a.MortgageReal))
	fmt.Fprintf(&buf, "Annualized mortgage equivalent return: %s\n", FormatPercentage(m.AnnualEquivalent))
	fmt.Fprintf(&buf, "Interest saved from prepayment: %s\n", FormatCurrency(m.InterestSaved))
	fmt.Fprintf(&buf, "PMI saved from prepayment: %s\n", FormatCurrency(m.PMISaved))
	fmt.Fprintf(&buf, "Estimated payoff acceleration: %d months\n", m.MonthsSaved)
	fmt.Fprintf(&buf, "Lifetime after-tax savings: %s\n", FormatCurrency(m.LifetimeAfterTaxSavings))
	fmt.Fprintf(&buf, "Hurdle rate: %s\n", FormatPercentage(m.HurdleRate))
	if m.Approximated {
		fmt.Fprintln(&buf, "No internal rate of return was bracketed; the after-tax loan rate is used as the equivalent return.")
	}
	fmt.Fprintln(&buf)

	section(&buf, "TOP RANKED OPTIONS (AFTER TAX)")
	fmt.Fprintf(&buf, "%-13s %-7s %12s %16s %16s %16s\n",
		"Scenario", "Ticker", "After-Tax Ann", "Projected Nom.", "Projected Real", "Vs Mortgage")
	for _, v := range result.Views {
		for _, row := range v.Top {
			fmt.Fprintf(&buf, "%-13s %-7s %12s %16s %16s %16s\n",
				v.Scenario.Title(), row.Ticker,
				FormatPercentage(row.EffectiveAfterTaxAnnual),
				FormatCurrency(row.ProjectedAfterTax),
				FormatCurrency(row.ProjectedRealAfterTax),
				FormatSignedCurrency(row.DeltaAfterTax))
		}
	}
	fmt.Fprintln(&buf)

	view := result.ActiveView()
	section(&buf, fmt.Sprintf("DETAILED BREAKDOWN (%s)", strings.ToUpper(view.Scenario.Title())))
	writeBreakdown(&buf, view.Ranked)
	if view.QuickResult != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, view.QuickResult)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, compare.MortgageDetail(a))
	fmt.Fprintln(&buf, compare.AssumptionsNote(a))
	fmt.Fprintln(&buf)

	section(&buf, "PRIORITIES")
	for _, p := range a.Priorities {
		fmt.Fprintf(&buf, "• %s\n", p)
	}
	fmt.Fprintln(&buf)

	if a.Dataset.SourceAsOf != "" {
		section(&buf, "DATA SOURCES")
		fmt.Fprintf(&buf, "Returns as of: %s\n", a.Dataset.SourceAsOf)
		if a.Dataset.Methodology != "" {
			fmt.Fprintf(&buf, "Methodology: %s\n", a.Dataset.Methodology)
		}
		for _, link := range a.Dataset.SourceLinks {
			fmt.Fprintf(&buf, "  %s\n", link)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, compare.Disclaimer)
	return buf.Bytes(), nil
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func writeBreakdown(w io.Writer, rows []domain.ComparisonRow) {
	fmt.Fprintf(w, "%-7s %11s %13s %16s %16s %16s\n",
		"Ticker", "Annual Used", "After-Tax Ann", "Nominal AT", "Real AT", "Vs Mortgage")
	for _, row := range rows {
		fmt.Fprintf(w, "%-7s %11s %13s %16s %16s %16s\n",
			row.Ticker,
			FormatPercentage(row.AnnualReturnUsed),
			FormatPercentage(row.EffectiveAfterTaxAnnual),
			FormatCurrency(row.ProjectedAfterTax),
			FormatCurrency(row.ProjectedRealAfterTax),
			FormatSignedCurrency(row.DeltaAfterTax))
	}
}
