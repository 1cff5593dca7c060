package calculation

import (
	"github.com/rgehrsitz/bestinvest/internal/breakeven"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// EvaluatePrepayment compares the schedule with and without the extra
// principal and expresses the difference as an annualized return.
func EvaluatePrepayment(req domain.PrepaymentRequest) (*domain.MortgageEquivalentResult, error) {
	baseline, err := Simulate(SimulationInput{
		Terms:         req.Terms,
		TaxShieldRate: req.TaxShieldRate,
		MonthlyPMI:    req.MonthlyPMI,
	})
	if err != nil {
		return nil, &CalculationError{Operation: "evaluate_prepayment", Message: "baseline schedule", Cause: err}
	}

	withPrepay, err := Simulate(SimulationInput{
		Terms:          req.Terms,
		ExtraPrincipal: req.ExtraPrincipal,
		TaxShieldRate:  req.TaxShieldRate,
		MonthlyPMI:     req.MonthlyPMI,
	})
	if err != nil {
		return nil, &CalculationError{Operation: "evaluate_prepayment", Message: "prepayment schedule", Cause: err}
	}

	cashflows := PrepaymentCashflows(req.ExtraPrincipal, baseline, withPrepay)

	result := &domain.MortgageEquivalentResult{
		Baseline:       *baseline,
		WithPrepayment: *withPrepay,
		Cashflows:      cashflows,
		InterestSaved:  baseline.TotalInterest - withPrepay.TotalInterest,
		PMISaved:       baseline.TotalPMI - withPrepay.TotalPMI,
		MonthsSaved:    baseline.MonthsToPayoff - withPrepay.MonthsToPayoff,
	}

	if irr, ok := breakeven.SolveIRR(cashflows); ok {
		result.MonthlyEquivalent = irr
		result.AnnualEquivalent = breakeven.AnnualizeMonthly(irr)
	} else {
		result.AnnualEquivalent = req.Terms.AnnualRate * (1 - req.TaxShieldRate)
		result.MonthlyEquivalent = result.AnnualEquivalent / 12
		result.Approximated = true
	}

	result.FutureValue = breakeven.FutureValue(req.ExtraPrincipal, result.MonthlyEquivalent, req.Terms.Months)
	if len(cashflows) > 1 {
		result.LifetimeAfterTaxSavings = floats.Sum(cashflows[1:])
	}
	result.HurdleRate = breakeven.HurdleRate(result.FutureValue, req.ExtraPrincipal, req.Terms.Years())

	return result, nil
}

// PrepaymentCashflows builds the series [-extra, base₁-pre₁, ...] over the
// longer of the two schedules. Months past a schedule's end count as zero.
func PrepaymentCashflows(extra float64, baseline, withPrepay *domain.AmortizationResult) domain.CashflowSeries {
	n := len(baseline.Records)
	if len(withPrepay.Records) > n {
		n = len(withPrepay.Records)
	}

	cashflows := make(domain.CashflowSeries, 0, n+1)
	cashflows = append(cashflows, -extra)
	for i := 0; i < n; i++ {
		cashflows = append(cashflows, baseline.OutflowAt(i)-withPrepay.OutflowAt(i))
	}
	return cashflows
}
