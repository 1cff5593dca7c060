package compare

import (
	"math"
	"sort"

	"github.com/rgehrsitz/bestinvest/internal/calculation"
	"github.com/rgehrsitz/bestinvest/internal/domain"
)

// ScenarioReturn scales a baseline return, flooring the result at zero
func ScenarioReturn(baseline, multiplier float64) float64 {
	return math.Max(baseline*multiplier, 0)
}

// MortgageReal deflates the mortgage future value over the horizon
func MortgageReal(mortgage *domain.MortgageEquivalentResult, params domain.ComparisonParams) float64 {
	return mortgage.FutureValue / math.Pow(1+params.InflationRate, params.Years)
}

// CashoutGoal returns the explicit goal, or the mortgage future value when
// none was supplied. The second result reports whether the default was used.
func CashoutGoal(mortgage *domain.MortgageEquivalentResult, params domain.ComparisonParams) (float64, bool) {
	if params.CashoutGoal != nil {
		return *params.CashoutGoal, false
	}
	return mortgage.FutureValue, true
}

// BuildComparison projects every asset under every scenario and measures it
// against the mortgage option. Rows are asset-major in input order, with
// scenarios in domain.AllScenarios order. Invalid multipliers are replaced
// by the default set.
func BuildComparison(
	assets []domain.AssetProfile,
	multipliers domain.ScenarioMultipliers,
	mortgage *domain.MortgageEquivalentResult,
	params domain.ComparisonParams,
) []domain.ComparisonRow {
	multipliers = multipliers.OrDefault()
	mortgageReal := MortgageReal(mortgage, params)
	goal, _ := CashoutGoal(mortgage, params)

	rows := make([]domain.ComparisonRow, 0, len(assets)*len(domain.AllScenarios))
	for _, asset := range assets {
		for _, scenario := range domain.AllScenarios {
			scenarioReturn := ScenarioReturn(asset.BaselineAnnualReturn, multipliers.For(scenario))

			annualReturnUsed := scenarioReturn
			dividendYield := asset.DividendYield
			if !params.IncludeDividends {
				annualReturnUsed = scenarioReturn - asset.DividendYield
				dividendYield = 0
			}

			proj := calculation.ProjectInvestment(calculation.ProjectionInput{
				Principal:          params.Principal,
				Years:              params.Years,
				AnnualTotalReturn:  annualReturnUsed,
				DividendYield:      dividendYield,
				IncludeDividends:   params.IncludeDividends,
				QdivTaxRate:        params.QdivTaxRate,
				LtcgTaxRate:        params.LtcgTaxRate,
				LiquidateAtHorizon: params.LiquidateAtHorizon,
				InflationRate:      params.InflationRate,
			})

			rows = append(rows, domain.ComparisonRow{
				Ticker:                  asset.Ticker,
				Name:                    asset.Name,
				Scenario:                scenario,
				AnnualReturnUsed:        annualReturnUsed,
				ProjectedAfterTax:       proj.NominalAfterTax,
				ProjectedRealAfterTax:   proj.RealAfterTax,
				DeltaAfterTax:           proj.NominalAfterTax - mortgage.FutureValue,
				DeltaRealAfterTax:       proj.RealAfterTax - mortgageReal,
				GoalGapAfterTax:         proj.NominalAfterTax - goal,
				EffectiveAfterTaxAnnual: proj.EffectiveAfterTaxAnnual,
				LiquidationTax:          proj.LiquidationTax,
			})
		}
	}
	return rows
}

// RankScenario returns the scenario's rows ordered by DeltaAfterTax,
// largest first. Ties keep their input order. rows is not modified.
func RankScenario(rows []domain.ComparisonRow, scenario domain.Scenario) []domain.ComparisonRow {
	ranked := make([]domain.ComparisonRow, 0, len(rows)/len(domain.AllScenarios)+1)
	for _, r := range rows {
		if r.Scenario == scenario {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DeltaAfterTax > ranked[j].DeltaAfterTax
	})
	return ranked
}

// TopN returns at most n of the best-ranked rows for a scenario
func TopN(rows []domain.ComparisonRow, scenario domain.Scenario, n int) []domain.ComparisonRow {
	ranked := RankScenario(rows, scenario)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// BestByScenario returns the top-ranked row of each scenario. Scenarios
// without rows are absent from the map.
func BestByScenario(rows []domain.ComparisonRow) map[domain.Scenario]*domain.ComparisonRow {
	best := make(map[domain.Scenario]*domain.ComparisonRow, len(domain.AllScenarios))
	for _, s := range domain.AllScenarios {
		if ranked := RankScenario(rows, s); len(ranked) > 0 {
			row := ranked[0]
			best[s] = &row
		}
	}
	return best
}
