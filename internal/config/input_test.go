package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedParser() *InputParser {
	return &InputParser{Now: func() time.Time {
		return time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
	}}
}

const yamlInput = `
loan:
  balance: 250000
  rate_percent: 6.5
  months_left: 300
  monthly_pmi: 85
tax:
  deductible: true
  marginal_rate_percent: 24
  deductible_share_percent: 80
  ltcg_rate_percent: 15
  qdiv_rate_percent: 15
  state_tax_rate_percent: 5
investment:
  amount: 25000
  include_dividends: false
  liquidate_at_horizon: true
  inflation_rate_percent: 2.5
  cashout_goal: 90000
priorities:
  emergency_fund: false
  high_interest_debt: true
  employer_match: true
view_scenario: aggressive
`

const tomlInput = `
view_scenario = "conservative"

[loan]
balance = 180000
rate_percent = 4.25
mode = "estimate"
start_month = "2023-01"
term_years = 30

[tax]
deductible = false

[investment]
amount = 10000
inflation_rate_percent = 3
`

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"input.yaml", FormatYAML},
		{"input.yml", FormatYAML},
		{"INPUT.TOML", FormatTOML},
		{"input.json", FormatJSON},
		{"input", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.filename))
		})
	}
}

func TestParse_YAML(t *testing.T) {
	cfg, err := fixedParser().Parse([]byte(yamlInput), FormatYAML)
	require.NoError(t, err)

	assert.True(t, cfg.Loan.Balance.Equal(decimal.NewFromInt(250000)))
	assert.True(t, cfg.Loan.RatePercent.Equal(decimal.NewFromFloat(6.5)))
	assert.Equal(t, 300, cfg.Loan.MonthsLeft)
	assert.Equal(t, domain.MonthsModeDirect, cfg.Loan.Mode, "mode keeps its default")
	assert.True(t, cfg.Tax.Deductible)
	require.NotNil(t, cfg.Investment.CashoutGoal)
	assert.True(t, cfg.Investment.CashoutGoal.Equal(decimal.NewFromInt(90000)))
	assert.False(t, cfg.Investment.IncludeDividends)
	assert.Equal(t, domain.PriorityFlags{HighInterestDebt: true, EmployerMatch: true}, cfg.Priorities)
	assert.Equal(t, "aggressive", cfg.ViewScenario)
}

func TestParse_TOML(t *testing.T) {
	cfg, err := fixedParser().Parse([]byte(tomlInput), FormatTOML)
	require.NoError(t, err)

	assert.True(t, cfg.Loan.Balance.Equal(decimal.NewFromInt(180000)))
	assert.True(t, cfg.Loan.RatePercent.Equal(decimal.NewFromFloat(4.25)))
	assert.Equal(t, domain.MonthsModeEstimate, cfg.Loan.Mode)
	assert.Equal(t, "2023-01", cfg.Loan.StartMonth)
	assert.Nil(t, cfg.Investment.CashoutGoal)
	assert.True(t, cfg.Investment.IncludeDividends, "unset fields keep defaults")
	assert.Equal(t, "conservative", cfg.ViewScenario)
}

func TestParse_JSON(t *testing.T) {
	cfg, err := fixedParser().Parse([]byte(`{"loan":{"balance":1000,"rate_percent":3,"months_left":12},"investment":{"amount":"500"}}`), FormatJSON)
	require.NoError(t, err)
	assert.True(t, cfg.Investment.Amount.Equal(decimal.NewFromInt(500)))

	_, err = fixedParser().Parse([]byte(`{"loan":{"bogus":1}}`), FormatJSON)
	assert.Error(t, err, "unknown fields are rejected")
}

func TestParse_Malformed(t *testing.T) {
	_, err := fixedParser().Parse([]byte("loan: [unterminated"), FormatYAML)
	assert.ErrorContains(t, err, "failed to parse YAML")

	_, err = fixedParser().Parse([]byte("[loan\nbalance = "), FormatTOML)
	assert.ErrorContains(t, err, "failed to parse TOML")

	_, err = fixedParser().Parse(nil, Format("xml"))
	assert.ErrorContains(t, err, "unsupported format")
}

func TestValidateConfiguration(t *testing.T) {
	ip := fixedParser()

	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{"defaults", func(c *domain.Configuration) {}, ""},
		{"zero balance allowed", func(c *domain.Configuration) { c.Loan.Balance = decimal.Zero }, ""},
		{"negative balance", func(c *domain.Configuration) { c.Loan.Balance = decimal.NewFromInt(-1) }, "balance cannot be negative"},
		{"negative rate", func(c *domain.Configuration) { c.Loan.RatePercent = decimal.NewFromFloat(-0.1) }, "rate_percent cannot be negative"},
		{"negative pmi", func(c *domain.Configuration) { c.Loan.MonthlyPMI = decimal.NewFromInt(-5) }, "monthly_pmi cannot be negative"},
		{"zero months", func(c *domain.Configuration) { c.Loan.MonthsLeft = 0 }, "months left must be at least 1"},
		{"months at cap", func(c *domain.Configuration) { c.Loan.MonthsLeft = MaxMonthsLeft }, ""},
		{"months past cap", func(c *domain.Configuration) {
			c.Loan.RatePercent = decimal.NewFromInt(10)
			c.Loan.MonthsLeft = 100000
		}, "months left must be at most 1200"},
		{"bad mode", func(c *domain.Configuration) { c.Loan.Mode = "weeks" }, "mode must be"},
		{"marginal too high", func(c *domain.Configuration) {
			c.Tax.Deductible = true
			c.Tax.MarginalRatePercent = decimal.NewFromInt(61)
		}, "marginal_rate_percent must be between 0% and 60%"},
		{"marginal ignored when not deductible", func(c *domain.Configuration) {
			c.Tax.Deductible = false
			c.Tax.MarginalRatePercent = decimal.NewFromInt(99)
		}, ""},
		{"share too high", func(c *domain.Configuration) {
			c.Tax.Deductible = true
			c.Tax.DeductibleSharePercent = decimal.NewFromInt(101)
		}, "deductible_share_percent"},
		{"ltcg too high", func(c *domain.Configuration) { c.Tax.LTCGRatePercent = decimal.NewFromFloat(50.01) }, "ltcg_rate_percent"},
		{"ltcg at limit", func(c *domain.Configuration) { c.Tax.LTCGRatePercent = decimal.NewFromInt(50) }, ""},
		{"qdiv negative", func(c *domain.Configuration) { c.Tax.QdivRatePercent = decimal.NewFromInt(-1) }, "qdiv_rate_percent"},
		{"state too high", func(c *domain.Configuration) { c.Tax.StateTaxRatePercent = decimal.NewFromInt(51) }, "state_tax_rate_percent"},
		{"zero amount", func(c *domain.Configuration) { c.Investment.Amount = decimal.Zero }, "amount must be positive"},
		{"inflation at lower bound", func(c *domain.Configuration) { c.Investment.InflationRatePercent = decimal.NewFromInt(-99) }, "inflation_rate_percent"},
		{"inflation just above lower bound", func(c *domain.Configuration) { c.Investment.InflationRatePercent = decimal.NewFromFloat(-98.9) }, ""},
		{"inflation at upper bound", func(c *domain.Configuration) { c.Investment.InflationRatePercent = decimal.NewFromInt(20) }, ""},
		{"inflation too high", func(c *domain.Configuration) { c.Investment.InflationRatePercent = decimal.NewFromFloat(20.5) }, "inflation_rate_percent"},
		{"negative goal", func(c *domain.Configuration) {
			g := decimal.NewFromInt(-1)
			c.Investment.CashoutGoal = &g
		}, "cashout_goal cannot be negative"},
		{"zero goal", func(c *domain.Configuration) {
			g := decimal.Zero
			c.Investment.CashoutGoal = &g
		}, ""},
		{"bad scenario", func(c *domain.Configuration) { c.ViewScenario = "wild" }, "view_scenario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfiguration()
			tt.mutate(&cfg)
			err := ip.ValidateConfiguration(&cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	ip := fixedParser()

	yamlPath := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlInput), 0o644))
	cfg, err := ip.LoadFromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Loan.MonthsLeft)

	tomlPath := filepath.Join(dir, "input.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlInput), 0o644))
	cfg, err = ip.LoadFromFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, domain.MonthsModeEstimate, cfg.Loan.Mode)

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("investment:\n  amount: 0\n"), 0o644))
	_, err = ip.LoadFromFile(badPath)
	assert.ErrorContains(t, err, "configuration validation failed")

	_, err = ip.LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestExampleInputs(t *testing.T) {
	ip := fixedParser()
	for _, name := range []string{"input.yaml", "input.toml"} {
		t.Run(name, func(t *testing.T) {
			_, err := ip.LoadFromFile(filepath.Join("..", "..", "examples", name))
			assert.NoError(t, err)
		})
	}
}
