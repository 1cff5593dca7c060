package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format is an input file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// DetectFormat picks the format from the file extension, defaulting to YAML
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// InputParser handles parsing of input configuration files
type InputParser struct {
	// Now supplies the current time for months-left estimation
	Now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

func (ip *InputParser) now() time.Time {
	if ip.Now == nil {
		return time.Now()
	}
	return ip.Now()
}

// LoadFromFile loads configuration from a YAML, TOML or JSON file. Fields
// missing from the file keep their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, DetectFormat(filename))
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Parse decodes data in the given format over the default configuration
func (ip *InputParser) Parse(data []byte, format Format) (*domain.Configuration, error) {
	config := domain.DefaultConfiguration()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateLoan(&config.Loan); err != nil {
		return fmt.Errorf("loan validation failed: %w", err)
	}
	if err := ip.validateTax(&config.Tax); err != nil {
		return fmt.Errorf("tax validation failed: %w", err)
	}
	if err := ip.validateInvestment(&config.Investment); err != nil {
		return fmt.Errorf("investment validation failed: %w", err)
	}
	if config.ViewScenario != "" {
		if _, ok := domain.ParseScenario(config.ViewScenario); !ok {
			return fmt.Errorf("view_scenario must be conservative, moderate or aggressive, got %q", config.ViewScenario)
		}
	}
	return nil
}

func (ip *InputParser) validateLoan(loan *domain.LoanInput) error {
	if loan.Balance.LessThan(decimal.Zero) {
		return fmt.Errorf("balance cannot be negative")
	}
	if loan.RatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("rate_percent cannot be negative")
	}
	if loan.MonthlyPMI.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly_pmi cannot be negative")
	}

	switch loan.Mode {
	case "", domain.MonthsModeDirect, domain.MonthsModeEstimate:
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", domain.MonthsModeDirect, domain.MonthsModeEstimate, loan.Mode)
	}

	months := ResolveMonthsLeft(loan, ip.now())
	if months < 1 {
		return fmt.Errorf("months left must be at least 1, got %d", months)
	}
	if months > MaxMonthsLeft {
		return fmt.Errorf("months left must be at most %d, got %d", MaxMonthsLeft, months)
	}
	return nil
}

func (ip *InputParser) validateTax(tax *domain.TaxInput) error {
	if tax.Deductible {
		if err := percentInRange("marginal_rate_percent", tax.MarginalRatePercent, 0, 60); err != nil {
			return err
		}
		if err := percentInRange("deductible_share_percent", tax.DeductibleSharePercent, 0, 100); err != nil {
			return err
		}
	}
	if err := percentInRange("ltcg_rate_percent", tax.LTCGRatePercent, 0, 50); err != nil {
		return err
	}
	if err := percentInRange("qdiv_rate_percent", tax.QdivRatePercent, 0, 50); err != nil {
		return err
	}
	if err := percentInRange("state_tax_rate_percent", tax.StateTaxRatePercent, 0, 50); err != nil {
		return err
	}
	return nil
}

func (ip *InputParser) validateInvestment(inv *domain.InvestmentInput) error {
	if inv.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive")
	}
	// (-99%, 20%]
	if inv.InflationRatePercent.LessThanOrEqual(decimal.NewFromInt(-99)) || inv.InflationRatePercent.GreaterThan(decimal.NewFromInt(20)) {
		return fmt.Errorf("inflation_rate_percent must be greater than -99%% and at most 20%%, got %s%%",
			inv.InflationRatePercent.StringFixed(2))
	}
	if inv.CashoutGoal != nil && inv.CashoutGoal.LessThan(decimal.Zero) {
		return fmt.Errorf("cashout_goal cannot be negative")
	}
	return nil
}

func percentInRange(field string, v decimal.Decimal, min, max int64) error {
	if v.LessThan(decimal.NewFromInt(min)) || v.GreaterThan(decimal.NewFromInt(max)) {
		return fmt.Errorf("%s must be between %d%% and %d%%, got %s%%", field, min, max, v.StringFixed(2))
	}
	return nil
}
