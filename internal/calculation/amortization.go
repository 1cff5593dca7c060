package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/bestinvest/internal/domain"
	"gonum.org/v1/gonum/floats"
)

const (
	// Epsilon is the threshold below which rates and balances count as zero
	Epsilon = 1e-8

	// MaxScheduleMonths caps a simulated schedule at one hundred years
	MaxScheduleMonths = 1200
)

// SimulationInput parameterizes one amortization run
type SimulationInput struct {
	Terms          domain.LoanTerms
	ExtraPrincipal float64
	TaxShieldRate  float64
	MonthlyPMI     float64
}

// MonthlyPayment returns the level payment that retires balance over months
// at monthlyRate. Near-zero rates amortize linearly. When the growth factor
// overflows the payment converges to the interest-only amount.
func MonthlyPayment(balance, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if monthlyRate <= Epsilon {
		return balance / float64(months)
	}
	f := math.Pow(1+monthlyRate, float64(months))
	if math.IsInf(f, 1) {
		return balance * monthlyRate
	}
	return balance * (monthlyRate * f) / (f - 1)
}

// Simulate runs the month-by-month schedule. The payment is fixed from the
// original balance; the extra principal is applied before the first month,
// so a prepayment shortens the schedule rather than lowering the payment.
func Simulate(in SimulationInput) (*domain.AmortizationResult, error) {
	if in.Terms.Months > MaxScheduleMonths {
		return nil, &CalculationError{
			Operation: "simulate",
			Message:   fmt.Sprintf("term of %d months exceeds the %d month schedule cap", in.Terms.Months, MaxScheduleMonths),
			Cause:     ErrInfeasibleLoan,
		}
	}

	rm := in.Terms.MonthlyRate()
	payment := MonthlyPayment(in.Terms.Balance, rm, in.Terms.Months)
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return nil, &CalculationError{
			Operation: "simulate",
			Message:   fmt.Sprintf("payment is not finite for rate %v over %d months", rm, in.Terms.Months),
			Cause:     ErrInfeasibleLoan,
		}
	}
	bal := math.Max(in.Terms.Balance-in.ExtraPrincipal, 0)

	pmi := 0.0
	if in.MonthlyPMI > 0 {
		pmi = in.MonthlyPMI
	}

	var records []domain.AmortizationRecord
	for m := 1; bal > Epsilon && m <= MaxScheduleMonths; m++ {
		interest := bal * rm
		principal := payment - interest
		if principal < 0 {
			return nil, &CalculationError{
				Operation: "simulate",
				Message:   fmt.Sprintf("month %d: payment %.2f below interest %.2f", m, payment, interest),
				Cause:     ErrInfeasibleLoan,
			}
		}
		principal = math.Min(principal, bal)

		paymentActual := interest + principal
		taxShield := interest * in.TaxShieldRate

		records = append(records, domain.AmortizationRecord{
			Month:           m,
			BalanceStart:    bal,
			Interest:        interest,
			Principal:       principal,
			PMI:             pmi,
			PaymentActual:   paymentActual,
			TaxShield:       taxShield,
			AfterTaxOutflow: paymentActual + pmi - taxShield,
		})

		bal -= principal
	}

	return summarize(records, payment), nil
}

func summarize(records []domain.AmortizationRecord, payment float64) *domain.AmortizationResult {
	interest := make([]float64, len(records))
	pmi := make([]float64, len(records))
	outflow := make([]float64, len(records))
	for i, r := range records {
		interest[i] = r.Interest
		pmi[i] = r.PMI
		outflow[i] = r.AfterTaxOutflow
	}

	return &domain.AmortizationResult{
		Records:              records,
		ScheduledPayment:     payment,
		MonthsToPayoff:       len(records),
		TotalInterest:        floats.Sum(interest),
		TotalPMI:             floats.Sum(pmi),
		TotalAfterTaxOutflow: floats.Sum(outflow),
	}
}
