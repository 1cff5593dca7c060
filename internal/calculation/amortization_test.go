package calculation

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name     string
		balance  float64
		rate     float64
		months   int
		expected float64
	}{
		{"30 year at 6%", 300000, 0.06 / 12, 360, 1798.65},
		{"15 year at 4.5%", 200000, 0.045 / 12, 180, 1529.99},
		{"zero rate", 12000, 0, 12, 1000},
		{"rate below epsilon", 12000, 1e-9, 12, 1000},
		{"no months", 12000, 0.005, 0, 0},
		{"growth factor overflows", 300000, 0.10 / 12, 100000, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MonthlyPayment(tt.balance, tt.rate, tt.months), 0.01)
		})
	}
}

func TestSimulate_FullSchedule(t *testing.T) {
	res, err := Simulate(SimulationInput{
		Terms: domain.LoanTerms{Balance: 300000, AnnualRate: 0.06, Months: 360},
	})
	require.NoError(t, err)

	assert.Equal(t, 360, res.MonthsToPayoff)
	assert.Len(t, res.Records, 360)
	assert.InDelta(t, 1798.65, res.ScheduledPayment, 0.01)
	assert.InDelta(t, res.ScheduledPayment*360-300000, res.TotalInterest, 0.5)
	assert.Zero(t, res.TotalPMI)
	assert.InDelta(t, res.ScheduledPayment*360, res.TotalAfterTaxOutflow, 0.5)

	first := res.Records[0]
	assert.Equal(t, 1, first.Month)
	assert.InDelta(t, 1500.0, first.Interest, 1e-9)
	assert.InDelta(t, first.PaymentActual, first.AfterTaxOutflow, 1e-9)
}

func TestSimulate_MonotonicBalance(t *testing.T) {
	inputs := []SimulationInput{
		{Terms: domain.LoanTerms{Balance: 300000, AnnualRate: 0.06, Months: 360}},
		{Terms: domain.LoanTerms{Balance: 300000, AnnualRate: 0.06, Months: 360}, ExtraPrincipal: 20000, TaxShieldRate: 0.24, MonthlyPMI: 120},
		{Terms: domain.LoanTerms{Balance: 50000, AnnualRate: 0, Months: 60}, ExtraPrincipal: 1234.56},
		{Terms: domain.LoanTerms{Balance: 125000, AnnualRate: 0.0875, Months: 600}},
	}

	for _, in := range inputs {
		res, err := Simulate(in)
		require.NoError(t, err)
		require.NotEmpty(t, res.Records)

		for i := 1; i < len(res.Records); i++ {
			assert.LessOrEqual(t, res.Records[i].BalanceStart, res.Records[i-1].BalanceStart)
		}
		last := res.Records[len(res.Records)-1]
		assert.InDelta(t, 0, last.BalanceEnd(), Epsilon)
		assert.LessOrEqual(t, res.MonthsToPayoff, MaxScheduleMonths)
	}
}

func TestSimulate_ExtraPrincipalNeverIncreasesPayoff(t *testing.T) {
	terms := domain.LoanTerms{Balance: 240000, AnnualRate: 0.055, Months: 300}
	base, err := Simulate(SimulationInput{Terms: terms, TaxShieldRate: 0.2, MonthlyPMI: 90})
	require.NoError(t, err)

	for _, extra := range []float64{0, 1, 500, 20000, 100000, 239999, 240000, 500000} {
		res, err := Simulate(SimulationInput{Terms: terms, ExtraPrincipal: extra, TaxShieldRate: 0.2, MonthlyPMI: 90})
		require.NoError(t, err)
		assert.LessOrEqual(t, res.MonthsToPayoff, base.MonthsToPayoff, "extra=%v", extra)
	}
}

func TestSimulate_ExtraCoversBalance(t *testing.T) {
	res, err := Simulate(SimulationInput{
		Terms:          domain.LoanTerms{Balance: 10000, AnnualRate: 0.05, Months: 60},
		ExtraPrincipal: 15000,
	})
	require.NoError(t, err)

	assert.Zero(t, res.MonthsToPayoff)
	assert.Empty(t, res.Records)
	assert.Zero(t, res.TotalInterest)
	assert.Greater(t, res.ScheduledPayment, 0.0, "payment is still derived from the original balance")
}

func TestSimulate_TaxShieldAndPMI(t *testing.T) {
	res, err := Simulate(SimulationInput{
		Terms:         domain.LoanTerms{Balance: 100000, AnnualRate: 0.06, Months: 120},
		TaxShieldRate: 0.25,
		MonthlyPMI:    75,
	})
	require.NoError(t, err)

	first := res.Records[0]
	assert.InDelta(t, 500.0, first.Interest, 1e-9)
	assert.InDelta(t, 125.0, first.TaxShield, 1e-9)
	assert.Equal(t, 75.0, first.PMI)
	assert.InDelta(t, first.PaymentActual+75-125, first.AfterTaxOutflow, 1e-9)
	assert.InDelta(t, 75.0*120, res.TotalPMI, 1e-6)

	noPMI, err := Simulate(SimulationInput{
		Terms:      domain.LoanTerms{Balance: 100000, AnnualRate: 0.06, Months: 120},
		MonthlyPMI: -10,
	})
	require.NoError(t, err)
	assert.Zero(t, noPMI.TotalPMI, "negative PMI is treated as none")
}

func TestSimulate_Infeasible(t *testing.T) {
	_, err := Simulate(SimulationInput{
		Terms: domain.LoanTerms{Balance: 100000, AnnualRate: 0.06, Months: 0},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInfeasibleLoan))

	var calcErr *CalculationError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, "simulate", calcErr.Operation)
}

func TestSimulate_NonFiniteTerms(t *testing.T) {
	tests := []struct {
		name  string
		terms domain.LoanTerms
	}{
		{"term beyond cap", domain.LoanTerms{Balance: 300000, AnnualRate: 0.10, Months: 100000}},
		{"payment overflows", domain.LoanTerms{Balance: 300000, AnnualRate: 1e306, Months: 360}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Simulate(SimulationInput{Terms: tt.terms})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, ErrInfeasibleLoan))
		})
	}
}

func TestSimulate_TerminationCap(t *testing.T) {
	// zero payment and zero interest never amortize; the month cap stops the loop
	res, err := Simulate(SimulationInput{
		Terms: domain.LoanTerms{Balance: 1000, AnnualRate: 0, Months: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, MaxScheduleMonths, res.MonthsToPayoff)
}

func TestSimulate_Termination(t *testing.T) {
	for _, rate := range []float64{0, 0.001, 0.03, 0.12, 0.5, 0.99} {
		for _, months := range []int{1, 12, 120, 360, 600} {
			res, err := Simulate(SimulationInput{
				Terms: domain.LoanTerms{Balance: 250000, AnnualRate: rate, Months: months},
			})
			if err != nil {
				assert.ErrorIs(t, err, ErrInfeasibleLoan)
				continue
			}
			assert.LessOrEqual(t, res.MonthsToPayoff, MaxScheduleMonths, "rate=%v months=%v", rate, months)
		}
	}
}
