package compare

import (
	"math"
	"testing"

	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPriorities(t *testing.T) {
	const diversify = "Diversify across multiple assets instead of concentrating in one option."
	tests := []struct {
		name  string
		flags domain.PriorityFlags
		want  []string
	}{
		{
			name:  "all satisfied",
			flags: domain.PriorityFlags{EmergencyFund: true, EmployerMatch: true},
			want:  []string{diversify},
		},
		{
			name:  "nothing satisfied",
			flags: domain.PriorityFlags{HighInterestDebt: true},
			want: []string{
				"Build an emergency fund (3-6 months) before risk assets.",
				"Pay high-interest debt (>8%) before extra investing.",
				"Capture full employer retirement match before taxable investing.",
				diversify,
			},
		},
		{
			name:  "missing match only",
			flags: domain.PriorityFlags{EmergencyFund: true},
			want:  []string{"Capture full employer retirement match before taxable investing.", diversify},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Priorities(tt.flags))
		})
	}
}

func TestQuickResult(t *testing.T) {
	tests := []struct {
		name string
		best *domain.ComparisonRow
		want string
	}{
		{
			name: "asset wins above goal",
			best: &domain.ComparisonRow{Ticker: "SPY", DeltaAfterTax: 1500.5, GoalGapAfterTax: 200},
			want: "Best in moderate: SPY beats mortgage by $1500.50 (after tax) and is above cash-out goal by $200.00.",
		},
		{
			name: "mortgage wins below goal",
			best: &domain.ComparisonRow{Ticker: "BND", DeltaAfterTax: -321.25, GoalGapAfterTax: -10},
			want: "Best in moderate: Mortgage prepayment leads by $321.25 (after tax). Best stock option is below cash-out goal by $10.00.",
		},
		{
			name: "tie goes to the mortgage",
			best: &domain.ComparisonRow{Ticker: "BND", DeltaAfterTax: 0, GoalGapAfterTax: 0},
			want: "Best in moderate: Mortgage prepayment leads by $0.00 (after tax). Best stock option is above cash-out goal by $0.00.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &domain.Analysis{Best: map[domain.Scenario]*domain.ComparisonRow{domain.ScenarioModerate: tt.best}}
			assert.Equal(t, tt.want, QuickResult(a, domain.ScenarioModerate))
		})
	}

	assert.Empty(t, QuickResult(&domain.Analysis{}, domain.ScenarioModerate))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$1234.57", Money(1234.567))
	assert.Equal(t, "$-12.00", Money(-12))
	assert.Equal(t, "+$5.00", SignedMoney(5))
	assert.Equal(t, "$-5.00", SignedMoney(-5))
	assert.Equal(t, "6.17%", Percent(0.0616778))
	assert.Equal(t, "0.123457", Fixed(0.1234567, 6))
}

func TestFormatting_NonFinite(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, NotAvailable, Money(tt.x))
				assert.Equal(t, NotAvailable, SignedMoney(tt.x))
				assert.Equal(t, NotAvailable, Percent(tt.x))
				assert.Equal(t, NotAvailable, Fixed(tt.x, 2))
			})
		})
	}

	a := &domain.Analysis{Best: map[domain.Scenario]*domain.ComparisonRow{
		domain.ScenarioModerate: {Ticker: "SPY", DeltaAfterTax: math.Inf(1), GoalGapAfterTax: math.NaN()},
	}}
	assert.NotPanics(t, func() {
		assert.Contains(t, QuickResult(a, domain.ScenarioModerate), NotAvailable)
	})
}

func testAnalysis() *domain.Analysis {
	return &domain.Analysis{
		Request: domain.CalculationRequest{
			Loan: domain.PrepaymentRequest{
				Terms:          domain.LoanTerms{Balance: 300000, AnnualRate: 0.06, Months: 360},
				ExtraPrincipal: 20000,
				TaxShieldRate:  0.18,
			},
			Comparison:      testParams(),
			Deductible:      true,
			MarginalRate:    0.24,
			DeductibleShare: 0.75,
		},
		Mortgage: domain.MortgageEquivalentResult{
			AnnualEquivalent: 0.0492,
			FutureValue:      120451.5,
			InterestSaved:    98765.4321,
			PMISaved:         0,
			MonthsSaved:      57,
		},
		MortgageReal:         49400.12,
		CashoutGoal:          120451.5,
		CashoutGoalDefaulted: true,
	}
}

func TestNotes(t *testing.T) {
	a := testAnalysis()

	assert.Equal(t,
		"Mortgage option (cash-flow modeled): $120451.50 nominal equivalent for $20000.00 over 360 months (4.92% annualized after tax/PMI effects).",
		MortgageSummary(a))
	assert.Equal(t,
		"Modeled mortgage effects: interest saved $98765.43, PMI saved $0.00, payoff accelerated by 57 months. Real (inflation-adjusted) mortgage equivalent: $49400.12.",
		MortgageDetail(a))
	assert.Equal(t,
		"Mortgage tax assumption: 24.00% marginal rate with 75% deductible share of interest (effective shield 18.00%).",
		TaxNote(a))

	a.Request.Deductible = false
	assert.Equal(t, "Mortgage tax assumption: no mortgage-interest deduction applied.", TaxNote(a))

	note := AssumptionsNote(a)
	assert.Contains(t, note, "dividends reinvested, qualified dividend tax 15.00%, LTCG tax 15.00% with end-of-horizon liquidation tax, inflation 3.00%.")
	assert.Contains(t, note, "Stock cash-out goal used: $120451.50 (defaulted to mortgage-end equivalent).")
	assert.Contains(t, note, "IRS Publication 936")
}

func TestTopItem(t *testing.T) {
	row := domain.ComparisonRow{
		Ticker: "QQQ", Name: "Nasdaq 100",
		ProjectedAfterTax: 150000, ProjectedRealAfterTax: 61000,
		DeltaAfterTax: 29548.5, GoalGapAfterTax: -1000,
	}
	assert.Equal(t,
		"QQQ (Nasdaq 100): $150000.00 nominal, $61000.00 real (+$29548.50 vs mortgage; goal gap $-1000.00)",
		TopItem(row))
}
