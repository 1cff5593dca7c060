package compare

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/shopspring/decimal"
)

// NotAvailable renders an amount that has no finite value
const NotAvailable = "n/a"

// Fixed formats x with the given number of decimal places. NaN and
// infinities render as NotAvailable.
func Fixed(x float64, places int32) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return NotAvailable
	}
	return decimal.NewFromFloat(x).StringFixed(places)
}

// Money formats a dollar amount with two decimal places
func Money(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return NotAvailable
	}
	return "$" + Fixed(x, 2)
}

// SignedMoney formats a dollar amount with a leading + when non-negative
func SignedMoney(x float64) string {
	if x >= 0 && !math.IsInf(x, 1) {
		return "+" + Money(x)
	}
	return Money(x)
}

// Percent formats a decimal rate as a percentage
func Percent(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return NotAvailable
	}
	return decimal.NewFromFloat(x).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// Priorities returns the ordered household checklist for the given flags
func Priorities(flags domain.PriorityFlags) []string {
	out := []string{}
	if !flags.EmergencyFund {
		out = append(out, "Build an emergency fund (3-6 months) before risk assets.")
	}
	if flags.HighInterestDebt {
		out = append(out, "Pay high-interest debt (>8%) before extra investing.")
	}
	if !flags.EmployerMatch {
		out = append(out, "Capture full employer retirement match before taxable investing.")
	}
	out = append(out, "Diversify across multiple assets instead of concentrating in one option.")
	return out
}

// QuickResult summarizes the best option in a scenario. It is empty when the
// scenario has no rows.
func QuickResult(analysis *domain.Analysis, scenario domain.Scenario) string {
	best, ok := analysis.Best[scenario]
	if !ok || best == nil {
		return ""
	}

	side := "below"
	if best.GoalGapAfterTax >= 0 {
		side = "above"
	}
	gap := Money(math.Abs(best.GoalGapAfterTax))

	if best.BeatsMortgage() {
		return fmt.Sprintf("Best in %s: %s beats mortgage by %s (after tax) and is %s cash-out goal by %s.",
			scenario, best.Ticker, Money(best.DeltaAfterTax), side, gap)
	}
	return fmt.Sprintf("Best in %s: Mortgage prepayment leads by %s (after tax). Best stock option is %s cash-out goal by %s.",
		scenario, Money(math.Abs(best.DeltaAfterTax)), side, gap)
}

// MortgageSummary describes the mortgage option's equivalent value
func MortgageSummary(analysis *domain.Analysis) string {
	m := analysis.Mortgage
	return fmt.Sprintf("Mortgage option (cash-flow modeled): %s nominal equivalent for %s over %d months (%s annualized after tax/PMI effects).",
		Money(m.FutureValue), Money(analysis.Request.Loan.ExtraPrincipal), analysis.Request.Loan.Terms.Months, Percent(m.AnnualEquivalent))
}

// MortgageDetail lists the modeled savings of the prepayment
func MortgageDetail(analysis *domain.Analysis) string {
	m := analysis.Mortgage
	return fmt.Sprintf("Modeled mortgage effects: interest saved %s, PMI saved %s, payoff accelerated by %d months. Real (inflation-adjusted) mortgage equivalent: %s.",
		Money(m.InterestSaved), Money(m.PMISaved), m.MonthsSaved, Money(analysis.MortgageReal))
}

// TaxNote describes the mortgage-interest deduction assumption
func TaxNote(analysis *domain.Analysis) string {
	req := analysis.Request
	if !req.Deductible {
		return "Mortgage tax assumption: no mortgage-interest deduction applied."
	}
	return fmt.Sprintf("Mortgage tax assumption: %s marginal rate with %s deductible share of interest (effective shield %s).",
		Percent(req.MarginalRate), Fixed(req.DeductibleShare*100, 0)+"%", Percent(req.Loan.TaxShieldRate))
}

// AssumptionsNote describes the investment-side assumptions
func AssumptionsNote(analysis *domain.Analysis) string {
	c := analysis.Request.Comparison

	dividends := "not reinvested"
	if c.IncludeDividends {
		dividends = "reinvested"
	}
	liquidation := "with no end-of-horizon liquidation tax"
	if c.LiquidateAtHorizon {
		liquidation = "with end-of-horizon liquidation tax"
	}
	goalSource := "user-entered"
	if analysis.CashoutGoalDefaulted {
		goalSource = "defaulted to mortgage-end equivalent"
	}

	return fmt.Sprintf("Detailed breakdown assumptions: dividends %s, qualified dividend tax %s, LTCG tax %s %s, inflation %s. "+
		"Stock cash-out goal used: %s (%s). Tax treatment assumption follows long-term capital gains/qualified-dividend framework "+
		"(IRS Topic 409 and IRS Publication 550) and mortgage-interest deduction framework (IRS Publication 936).",
		dividends, Percent(c.QdivTaxRate), Percent(c.LtcgTaxRate), liquidation, Percent(c.InflationRate),
		Money(analysis.CashoutGoal), goalSource)
}

// TopItem renders a single ranked option line
func TopItem(row domain.ComparisonRow) string {
	return fmt.Sprintf("%s (%s): %s nominal, %s real (%s vs mortgage; goal gap %s)",
		row.Ticker, row.Name, Money(row.ProjectedAfterTax), Money(row.ProjectedRealAfterTax),
		SignedMoney(row.DeltaAfterTax), SignedMoney(row.GoalGapAfterTax))
}

// Disclaimer is the fixed assumptions notice attached to every report
const Disclaimer = "Assumptions & limits: This estimate is not financial advice. It assumes long-term capital-gains treatment " +
	"for liquidation, qualified-dividend tax treatment for distributions, and does not model tax-loss harvesting, " +
	"transaction costs, expense-ratio drift, or sequence-of-returns simulations."
