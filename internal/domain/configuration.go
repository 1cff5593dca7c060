package domain

import "github.com/shopspring/decimal"

// Configuration is the user-facing calculation input as read from a file.
// Rates are percentages (6.0 means 6%).
type Configuration struct {
	Loan         LoanInput       `yaml:"loan" json:"loan" toml:"loan"`
	Tax          TaxInput        `yaml:"tax" json:"tax" toml:"tax"`
	Investment   InvestmentInput `yaml:"investment" json:"investment" toml:"investment"`
	Priorities   PriorityFlags   `yaml:"priorities" json:"priorities" toml:"priorities"`
	ViewScenario string          `yaml:"view_scenario" json:"view_scenario" toml:"view_scenario"`
}

// MonthsMode selects how the remaining term is determined
type MonthsMode string

const (
	MonthsModeDirect   MonthsMode = "months"
	MonthsModeEstimate MonthsMode = "estimate"
)

// LoanInput holds the mortgage section
type LoanInput struct {
	Balance     decimal.Decimal `yaml:"balance" json:"balance" toml:"balance"`
	RatePercent decimal.Decimal `yaml:"rate_percent" json:"rate_percent" toml:"rate_percent"`
	MonthsLeft  int             `yaml:"months_left" json:"months_left" toml:"months_left"`
	Mode        MonthsMode      `yaml:"mode" json:"mode" toml:"mode"`
	StartMonth  string          `yaml:"start_month" json:"start_month" toml:"start_month"` // YYYY-MM
	TermYears   int             `yaml:"term_years" json:"term_years" toml:"term_years"`
	MonthlyPMI  decimal.Decimal `yaml:"monthly_pmi" json:"monthly_pmi" toml:"monthly_pmi"`
}

// TaxInput holds mortgage-interest deduction and investment tax assumptions
type TaxInput struct {
	Deductible             bool            `yaml:"deductible" json:"deductible" toml:"deductible"`
	MarginalRatePercent    decimal.Decimal `yaml:"marginal_rate_percent" json:"marginal_rate_percent" toml:"marginal_rate_percent"`
	DeductibleSharePercent decimal.Decimal `yaml:"deductible_share_percent" json:"deductible_share_percent" toml:"deductible_share_percent"`
	LTCGRatePercent        decimal.Decimal `yaml:"ltcg_rate_percent" json:"ltcg_rate_percent" toml:"ltcg_rate_percent"`
	QdivRatePercent        decimal.Decimal `yaml:"qdiv_rate_percent" json:"qdiv_rate_percent" toml:"qdiv_rate_percent"`
	StateTaxRatePercent    decimal.Decimal `yaml:"state_tax_rate_percent" json:"state_tax_rate_percent" toml:"state_tax_rate_percent"`
}

// InvestmentInput holds the lump sum and the projection assumptions
type InvestmentInput struct {
	Amount               decimal.Decimal  `yaml:"amount" json:"amount" toml:"amount"`
	IncludeDividends     bool             `yaml:"include_dividends" json:"include_dividends" toml:"include_dividends"`
	LiquidateAtHorizon   bool             `yaml:"liquidate_at_horizon" json:"liquidate_at_horizon" toml:"liquidate_at_horizon"`
	InflationRatePercent decimal.Decimal  `yaml:"inflation_rate_percent" json:"inflation_rate_percent" toml:"inflation_rate_percent"`
	CashoutGoal          *decimal.Decimal `yaml:"cashout_goal,omitempty" json:"cashout_goal,omitempty" toml:"cashout_goal,omitempty"`
	AssetsFile           string           `yaml:"assets_file,omitempty" json:"assets_file,omitempty" toml:"assets_file,omitempty"`
}

// DefaultConfiguration returns the form defaults of the calculator
func DefaultConfiguration() Configuration {
	return Configuration{
		Loan: LoanInput{
			Balance:     decimal.NewFromInt(300000),
			RatePercent: decimal.NewFromFloat(6.0),
			MonthsLeft:  360,
			Mode:        MonthsModeDirect,
			TermYears:   30,
			MonthlyPMI:  decimal.Zero,
		},
		Tax: TaxInput{
			MarginalRatePercent:    decimal.NewFromInt(24),
			DeductibleSharePercent: decimal.NewFromInt(100),
			LTCGRatePercent:        decimal.NewFromInt(15),
			QdivRatePercent:        decimal.NewFromInt(15),
			StateTaxRatePercent:    decimal.Zero,
		},
		Investment: InvestmentInput{
			Amount:               decimal.NewFromInt(20000),
			IncludeDividends:     true,
			LiquidateAtHorizon:   true,
			InflationRatePercent: decimal.NewFromInt(3),
		},
		Priorities: PriorityFlags{
			EmergencyFund: true,
			EmployerMatch: true,
		},
		ViewScenario: string(ScenarioModerate),
	}
}
