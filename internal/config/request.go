package config

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxCombinedTaxRate caps federal plus state rates on investment income
const MaxCombinedTaxRate = 0.6

// MaxMonthsLeft matches the longest schedule the amortization engine runs
const MaxMonthsLeft = 1200

var startMonthPattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)

// EstimateMonthsLeft derives the remaining term from a loan start month
// (YYYY-MM) and its original term in years. The result is at least 1.
func EstimateMonthsLeft(startMonth string, termYears int, now time.Time) (int, error) {
	m := startMonthPattern.FindStringSubmatch(startMonth)
	if m == nil {
		return 0, fmt.Errorf("start month %q must use YYYY-MM format", startMonth)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if year == 0 {
		return 0, fmt.Errorf("start month %q has an invalid year", startMonth)
	}
	if termYears <= 0 {
		return 0, fmt.Errorf("term years must be positive, got %d", termYears)
	}

	elapsed := (now.Year()-year)*12 + (int(now.Month()) - month)
	left := termYears*12 - elapsed
	if left < 1 {
		left = 1
	}
	return left, nil
}

// ResolveMonthsLeft returns the months to analyze. In estimate mode the
// estimate is used when it can be computed, otherwise months_left.
func ResolveMonthsLeft(loan *domain.LoanInput, now time.Time) int {
	if loan.Mode == domain.MonthsModeEstimate {
		if est, err := EstimateMonthsLeft(loan.StartMonth, loan.TermYears, now); err == nil {
			return est
		}
	}
	return loan.MonthsLeft
}

// BuildRequest converts a validated configuration into an engine request.
// Percentages become decimals and combined tax rates are derived here.
func (ip *InputParser) BuildRequest(config *domain.Configuration) domain.CalculationRequest {
	months := ResolveMonthsLeft(&config.Loan, ip.now())

	marginal := pct(config.Tax.MarginalRatePercent)
	share := pct(config.Tax.DeductibleSharePercent)
	shield := 0.0
	if config.Tax.Deductible {
		shield = clamp(marginal*share, 0, MaxCombinedTaxRate)
	}

	state := pct(config.Tax.StateTaxRatePercent)
	amount := config.Investment.Amount.InexactFloat64()

	var goal *float64
	if config.Investment.CashoutGoal != nil {
		g := config.Investment.CashoutGoal.InexactFloat64()
		goal = &g
	}

	view, ok := domain.ParseScenario(config.ViewScenario)
	if !ok {
		view = domain.ScenarioModerate
	}

	return domain.CalculationRequest{
		Loan: domain.PrepaymentRequest{
			Terms: domain.LoanTerms{
				Balance:    config.Loan.Balance.InexactFloat64(),
				AnnualRate: pct(config.Loan.RatePercent),
				Months:     months,
			},
			ExtraPrincipal: amount,
			TaxShieldRate:  shield,
			MonthlyPMI:     config.Loan.MonthlyPMI.InexactFloat64(),
		},
		Comparison: domain.ComparisonParams{
			Principal:          amount,
			Years:              float64(months) / 12,
			IncludeDividends:   config.Investment.IncludeDividends,
			QdivTaxRate:        clamp(pct(config.Tax.QdivRatePercent)+state, 0, MaxCombinedTaxRate),
			LtcgTaxRate:        clamp(pct(config.Tax.LTCGRatePercent)+state, 0, MaxCombinedTaxRate),
			LiquidateAtHorizon: config.Investment.LiquidateAtHorizon,
			InflationRate:      pct(config.Investment.InflationRatePercent),
			CashoutGoal:        goal,
		},
		Deductible:      config.Tax.Deductible,
		MarginalRate:    marginal,
		DeductibleShare: share,
		Priorities:      config.Priorities,
		ViewScenario:    view,
	}
}

var hundred = decimal.NewFromInt(100)

func pct(d decimal.Decimal) float64 {
	return d.Div(hundred).InexactFloat64()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
