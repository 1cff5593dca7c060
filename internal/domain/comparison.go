package domain

// ComparisonParams are the shared inputs for every asset/scenario projection
type ComparisonParams struct {
	Principal          float64  `json:"principal"`
	Years              float64  `json:"years"`
	IncludeDividends   bool     `json:"includeDividends"`
	QdivTaxRate        float64  `json:"qdivTaxRate"`
	LtcgTaxRate        float64  `json:"ltcgTaxRate"`
	LiquidateAtHorizon bool     `json:"liquidateAtHorizon"`
	InflationRate      float64  `json:"inflationRate"`
	CashoutGoal        *float64 `json:"cashoutGoal,omitempty"` // nil defaults to the mortgage future value
}

// ComparisonRow is the outcome for one asset under one scenario
type ComparisonRow struct {
	Ticker                  string   `json:"ticker"`
	Name                    string   `json:"name"`
	Scenario                Scenario `json:"scenario"`
	AnnualReturnUsed        float64  `json:"annualReturnUsed"`
	ProjectedAfterTax       float64  `json:"projectedAfterTax"`
	ProjectedRealAfterTax   float64  `json:"projectedRealAfterTax"`
	DeltaAfterTax           float64  `json:"deltaAfterTax"`
	DeltaRealAfterTax       float64  `json:"deltaRealAfterTax"`
	GoalGapAfterTax         float64  `json:"goalGapAfterTax"`
	EffectiveAfterTaxAnnual float64  `json:"effectiveAfterTaxAnnual"`
	LiquidationTax          float64  `json:"liquidationTax"`
}

// BeatsMortgage reports whether the asset finished ahead of prepayment
func (r ComparisonRow) BeatsMortgage() bool {
	return r.DeltaAfterTax > 0
}

// PriorityFlags are the household readiness checks shown alongside results
type PriorityFlags struct {
	EmergencyFund    bool `json:"emergencyFund" yaml:"emergency_fund" toml:"emergency_fund"`
	HighInterestDebt bool `json:"highInterestDebt" yaml:"high_interest_debt" toml:"high_interest_debt"`
	EmployerMatch    bool `json:"employerMatch" yaml:"employer_match" toml:"employer_match"`
}

// CalculationRequest is a fully derived engine request. All rates are decimals.
type CalculationRequest struct {
	Loan         PrepaymentRequest `json:"loan"`
	Comparison   ComparisonParams  `json:"comparison"`
	Deductible   bool              `json:"deductible"`
	MarginalRate float64           `json:"marginalRate"`
	// DeductibleShare is the fraction of interest that is deductible
	DeductibleShare float64       `json:"deductibleShare"`
	Priorities      PriorityFlags `json:"priorities"`
	ViewScenario    Scenario      `json:"viewScenario"`
}

// DatasetInfo describes where asset returns came from
type DatasetInfo struct {
	SourceAsOf  string   `json:"sourceAsOf"`
	Methodology string   `json:"methodology"`
	SourceLinks []string `json:"sourceLinks"`
	Embedded    bool     `json:"embedded"`
}

// Analysis is the complete result of one calculation
type Analysis struct {
	Request              CalculationRequest          `json:"request"`
	Mortgage             MortgageEquivalentResult    `json:"mortgage"`
	MortgageReal         float64                     `json:"mortgageReal"`
	CashoutGoal          float64                     `json:"cashoutGoal"`
	CashoutGoalDefaulted bool                        `json:"cashoutGoalDefaulted"`
	Multipliers          ScenarioMultipliers         `json:"multipliers"`
	Rows                 []ComparisonRow             `json:"rows"`
	Best                 map[Scenario]*ComparisonRow `json:"best"`
	Priorities           []string                    `json:"priorities"`
	Dataset              DatasetInfo                 `json:"dataset"`
}

// RowsFor returns the rows for a scenario in their stored order
func (a *Analysis) RowsFor(s Scenario) []ComparisonRow {
	var out []ComparisonRow
	for _, r := range a.Rows {
		if r.Scenario == s {
			out = append(out, r)
		}
	}
	return out
}
