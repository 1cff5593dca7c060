package output

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"gopkg.in/yaml.v3"
)

// SaveConfiguration saves a configuration to a YAML file
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	return os.WriteFile(filename, data, 0644)
}

// FormatCurrency formats an amount as currency
func FormatCurrency(amount float64) string {
	return compare.Money(amount)
}

// FormatSignedCurrency formats an amount with a leading + when non-negative
func FormatSignedCurrency(amount float64) string {
	return compare.SignedMoney(amount)
}

// FormatPercentage formats a decimal rate as a percentage
func FormatPercentage(rate float64) string {
	return compare.Percent(rate)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func fixed(x float64, places int32) string {
	return compare.Fixed(x, places)
}
