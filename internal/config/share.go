package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/shopspring/decimal"
)

// ToQuery encodes the configuration as the calculator's shareable query
// string. Empty values are omitted.
func ToQuery(config *domain.Configuration) string {
	v := url.Values{}
	setDec := func(key string, d decimal.Decimal) { v.Set(key, d.String()) }
	setBool := func(key string, b bool) { v.Set(key, strconv.FormatBool(b)) }

	setDec("balance", config.Loan.Balance)
	setDec("rate", config.Loan.RatePercent)
	setBool("deductible", config.Tax.Deductible)
	setDec("taxRate", config.Tax.MarginalRatePercent)
	setDec("deductibleShare", config.Tax.DeductibleSharePercent)
	if config.Loan.Mode != "" {
		v.Set("mode", string(config.Loan.Mode))
	}
	if config.Loan.MonthsLeft > 0 {
		v.Set("monthsLeft", strconv.Itoa(config.Loan.MonthsLeft))
	}
	if config.Loan.StartMonth != "" {
		v.Set("startDate", config.Loan.StartMonth)
	}
	if config.Loan.TermYears > 0 {
		v.Set("termYears", strconv.Itoa(config.Loan.TermYears))
	}
	setDec("amount", config.Investment.Amount)
	setBool("includeDividends", config.Investment.IncludeDividends)
	setDec("ltcgRate", config.Tax.LTCGRatePercent)
	setDec("qdivRate", config.Tax.QdivRatePercent)
	setDec("stateTaxRate", config.Tax.StateTaxRatePercent)
	setBool("liquidateHorizon", config.Investment.LiquidateAtHorizon)
	setDec("inflationRate", config.Investment.InflationRatePercent)
	setDec("pmiMonthly", config.Loan.MonthlyPMI)
	if config.Investment.CashoutGoal != nil {
		setDec("cashoutGoal", *config.Investment.CashoutGoal)
	}
	setBool("emergency", config.Priorities.EmergencyFund)
	setBool("highDebt", config.Priorities.HighInterestDebt)
	setBool("match", config.Priorities.EmployerMatch)
	if config.ViewScenario != "" {
		v.Set("viewScenario", config.ViewScenario)
	}

	return v.Encode()
}

// ShareLink joins a base URL and the encoded configuration
func ShareLink(baseURL string, config *domain.Configuration) string {
	return strings.TrimRight(baseURL, "?") + "?" + ToQuery(config)
}

// ApplyQuery overlays the keys present in query onto config. Unknown keys
// and unrecognized mode or scenario values are ignored. Keys are applied in
// a fixed order and config is left untouched when any value is invalid.
func ApplyQuery(config *domain.Configuration, query string) error {
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return fmt.Errorf("failed to parse query: %w", err)
	}

	c := *config

	decimals := []struct {
		key string
		dst *decimal.Decimal
	}{
		{"balance", &c.Loan.Balance},
		{"rate", &c.Loan.RatePercent},
		{"taxRate", &c.Tax.MarginalRatePercent},
		{"deductibleShare", &c.Tax.DeductibleSharePercent},
		{"amount", &c.Investment.Amount},
		{"ltcgRate", &c.Tax.LTCGRatePercent},
		{"qdivRate", &c.Tax.QdivRatePercent},
		{"stateTaxRate", &c.Tax.StateTaxRatePercent},
		{"inflationRate", &c.Investment.InflationRatePercent},
		{"pmiMonthly", &c.Loan.MonthlyPMI},
	}
	for _, f := range decimals {
		if !values.Has(f.key) {
			continue
		}
		d, err := decimal.NewFromString(values.Get(f.key))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = d
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"monthsLeft", &c.Loan.MonthsLeft},
		{"termYears", &c.Loan.TermYears},
	}
	for _, f := range ints {
		if !values.Has(f.key) {
			continue
		}
		n, err := strconv.Atoi(values.Get(f.key))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"deductible", &c.Tax.Deductible},
		{"includeDividends", &c.Investment.IncludeDividends},
		{"liquidateHorizon", &c.Investment.LiquidateAtHorizon},
		{"emergency", &c.Priorities.EmergencyFund},
		{"highDebt", &c.Priorities.HighInterestDebt},
		{"match", &c.Priorities.EmployerMatch},
	}
	for _, f := range bools {
		if values.Has(f.key) {
			*f.dst = values.Get(f.key) == "true"
		}
	}

	if values.Has("cashoutGoal") {
		raw := strings.TrimSpace(values.Get("cashoutGoal"))
		if raw == "" {
			c.Investment.CashoutGoal = nil
		} else {
			d, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("invalid cashoutGoal: %w", err)
			}
			c.Investment.CashoutGoal = &d
		}
	}
	if values.Has("startDate") {
		c.Loan.StartMonth = values.Get("startDate")
	}
	if mode := domain.MonthsMode(values.Get("mode")); mode == domain.MonthsModeDirect || mode == domain.MonthsModeEstimate {
		c.Loan.Mode = mode
	}
	if _, ok := domain.ParseScenario(values.Get("viewScenario")); ok {
		c.ViewScenario = values.Get("viewScenario")
	}

	*config = c
	return nil
}
