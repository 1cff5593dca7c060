package domain

import "math"

// AssetProfile is a single investable asset with its historical baseline
type AssetProfile struct {
	Ticker               string  `json:"ticker"`
	Name                 string  `json:"name"`
	BaselineAnnualReturn float64 `json:"baselineAnnualReturn"` // total return, dividends included
	DividendYield        float64 `json:"dividendYield"`
	ProxyNote            string  `json:"proxyNote,omitempty"`
}

// ProjectionResult is the after-tax outcome of holding an asset over the horizon
type ProjectionResult struct {
	NominalAfterTax         float64 `json:"nominalAfterTax"`
	RealAfterTax            float64 `json:"realAfterTax"`
	EffectiveAfterTaxAnnual float64 `json:"effectiveAfterTaxAnnual"`
	LiquidationTax          float64 `json:"liquidationTax"`
	DividendCash            float64 `json:"dividendCash"`
}

// Scenario is a named market condition
type Scenario string

const (
	ScenarioConservative Scenario = "conservative"
	ScenarioModerate     Scenario = "moderate"
	ScenarioAggressive   Scenario = "aggressive"
)

// AllScenarios lists scenarios in their fixed evaluation order
var AllScenarios = []Scenario{ScenarioConservative, ScenarioModerate, ScenarioAggressive}

// Title returns the capitalized scenario name
func (s Scenario) Title() string {
	switch s {
	case ScenarioConservative:
		return "Conservative"
	case ScenarioModerate:
		return "Moderate"
	case ScenarioAggressive:
		return "Aggressive"
	default:
		return string(s)
	}
}

// ParseScenario returns the scenario for name and whether it is known
func ParseScenario(name string) (Scenario, bool) {
	for _, s := range AllScenarios {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// ScenarioMultipliers scale baseline returns per scenario
type ScenarioMultipliers struct {
	Conservative float64 `json:"conservative" yaml:"conservative" toml:"conservative"`
	Moderate     float64 `json:"moderate" yaml:"moderate" toml:"moderate"`
	Aggressive   float64 `json:"aggressive" yaml:"aggressive" toml:"aggressive"`
}

// DefaultMultipliers returns the standard scenario scaling
func DefaultMultipliers() ScenarioMultipliers {
	return ScenarioMultipliers{Conservative: 0.71, Moderate: 1.0, Aggressive: 1.21}
}

// For returns the multiplier for a scenario
func (m ScenarioMultipliers) For(s Scenario) float64 {
	switch s {
	case ScenarioConservative:
		return m.Conservative
	case ScenarioAggressive:
		return m.Aggressive
	default:
		return m.Moderate
	}
}

// Valid reports whether every multiplier is finite and within (0, 3]
func (m ScenarioMultipliers) Valid() bool {
	for _, v := range []float64{m.Conservative, m.Moderate, m.Aggressive} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > 3 {
			return false
		}
	}
	return true
}

// OrDefault returns m when valid and the default set otherwise.
// The replacement is all-or-nothing.
func (m ScenarioMultipliers) OrDefault() ScenarioMultipliers {
	if m.Valid() {
		return m
	}
	return DefaultMultipliers()
}
