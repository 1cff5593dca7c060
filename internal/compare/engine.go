package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/bestinvest/internal/calculation"
	"github.com/rgehrsitz/bestinvest/internal/config"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/marketdata"
)

// CompareEngine orchestrates the mortgage evaluation and the asset/scenario comparison
type CompareEngine struct {
	CalcEngine *calculation.CalculationEngine
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &CompareEngine{CalcEngine: calcEngine}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Assets      []domain.AssetProfile
	Multipliers domain.ScenarioMultipliers // invalid sets fall back to the defaults
	Dataset     domain.DatasetInfo
}

// Compare evaluates the prepayment and ranks every asset against it
func (ce *CompareEngine) Compare(
	ctx context.Context,
	req domain.CalculationRequest,
	options CompareOptions,
) (*Result, error) {
	if len(options.Assets) == 0 {
		return nil, &CompareError{Operation: "compare", Message: "no assets to compare"}
	}

	mortgage, err := ce.CalcEngine.EvaluatePrepayment(ctx, req.Loan)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate mortgage prepayment: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	multipliers := options.Multipliers.OrDefault()
	rows := BuildComparison(options.Assets, multipliers, mortgage, req.Comparison)
	goal, defaulted := CashoutGoal(mortgage, req.Comparison)

	view := req.ViewScenario
	if _, ok := domain.ParseScenario(string(view)); !ok {
		view = domain.ScenarioModerate
	}
	req.ViewScenario = view

	analysis := &domain.Analysis{
		Request:              req,
		Mortgage:             *mortgage,
		MortgageReal:         MortgageReal(mortgage, req.Comparison),
		CashoutGoal:          goal,
		CashoutGoalDefaulted: defaulted,
		Multipliers:          multipliers,
		Rows:                 rows,
		Best:                 BestByScenario(rows),
		Priorities:           Priorities(req.Priorities),
		Dataset:              options.Dataset,
	}

	if log := ce.CalcEngine.Logger; log != nil {
		log.Debugf("compared %d assets across %d scenarios", len(options.Assets), len(domain.AllScenarios))
	}
	return NewResult(analysis), nil
}

// CompareConfiguration derives the engine request from a validated
// configuration and compares it against every asset in the dataset
func (ce *CompareEngine) CompareConfiguration(
	ctx context.Context,
	parser *config.InputParser,
	cfg *domain.Configuration,
	dataset *marketdata.Dataset,
) (*Result, error) {
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, err
	}
	if dataset == nil {
		dataset = marketdata.EmbeddedDataset()
	}
	return ce.Compare(ctx, parser.BuildRequest(cfg), CompareOptions{
		Assets:      dataset.Profiles(),
		Multipliers: dataset.Multipliers(),
		Dataset:     dataset.Info(),
	})
}
