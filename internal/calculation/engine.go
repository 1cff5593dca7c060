package calculation

import (
	"context"

	"github.com/rgehrsitz/bestinvest/internal/domain"
)

// CalculationEngine wraps the pure calculators with logging and cancellation
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// EvaluatePrepayment runs the prepayment evaluator for req
func (ce *CalculationEngine) EvaluatePrepayment(ctx context.Context, req domain.PrepaymentRequest) (*domain.MortgageEquivalentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := ce.logger()
	log.Debugf("evaluating prepayment: balance=%.2f rate=%.4f months=%d extra=%.2f shield=%.4f pmi=%.2f",
		req.Terms.Balance, req.Terms.AnnualRate, req.Terms.Months, req.ExtraPrincipal, req.TaxShieldRate, req.MonthlyPMI)

	result, err := EvaluatePrepayment(req)
	if err != nil {
		log.Errorf("prepayment evaluation failed: %v", err)
		return nil, err
	}

	if result.Approximated {
		log.Warnf("no IRR root bracketed; using after-tax loan rate %.4f", result.AnnualEquivalent)
	}
	log.Debugf("baseline payoff %d months, with prepayment %d months, annual equivalent %.6f",
		result.Baseline.MonthsToPayoff, result.WithPrepayment.MonthsToPayoff, result.AnnualEquivalent)

	return result, nil
}

// Schedule simulates a single schedule, with or without the extra principal
func (ce *CalculationEngine) Schedule(ctx context.Context, req domain.PrepaymentRequest, withPrepayment bool) (*domain.AmortizationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := SimulationInput{
		Terms:         req.Terms,
		TaxShieldRate: req.TaxShieldRate,
		MonthlyPMI:    req.MonthlyPMI,
	}
	if withPrepayment {
		in.ExtraPrincipal = req.ExtraPrincipal
	}

	result, err := Simulate(in)
	if err != nil {
		ce.logger().Errorf("schedule simulation failed: %v", err)
		return nil, err
	}
	ce.logger().Debugf("simulated %d months, payment %.2f", result.MonthsToPayoff, result.ScheduledPayment)
	return result, nil
}

// Project runs the investment projector
func (ce *CalculationEngine) Project(in ProjectionInput) domain.ProjectionResult {
	res := ProjectInvestment(in)
	ce.logger().Debugf("projected %.2f over %.2f years at %.4f: nominal %.2f", in.Principal, in.Years, in.AnnualTotalReturn, res.NominalAfterTax)
	return res
}
