package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/bestinvest/internal/calculation"
	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestResult(t *testing.T) *compare.Result {
	t.Helper()
	req := domain.CalculationRequest{
		Loan: domain.PrepaymentRequest{
			Terms:          domain.LoanTerms{Balance: 300000, AnnualRate: 0.06, Months: 360},
			ExtraPrincipal: 20000,
		},
		Comparison: domain.ComparisonParams{
			Principal: 20000, Years: 30, IncludeDividends: true,
			QdivTaxRate: 0.15, LtcgTaxRate: 0.15, LiquidateAtHorizon: true, InflationRate: 0.03,
		},
		ViewScenario: domain.ScenarioAggressive,
	}
	assets := []domain.AssetProfile{
		{Ticker: "SPY", Name: "S&P 500", BaselineAnnualReturn: 0.10, DividendYield: 0.015},
		{Ticker: "BND", Name: "Total Bond", BaselineAnnualReturn: 0.04, DividendYield: 0.03},
	}
	result, err := compare.NewCompareEngine(calculation.NewCalculationEngine()).Compare(
		context.Background(), req, compare.CompareOptions{
			Assets:  assets,
			Dataset: domain.DatasetInfo{SourceAsOf: "2026-01-05 (embedded local dataset)", Embedded: true, SourceLinks: []string{"https://example.com/data"}},
		})
	require.NoError(t, err)
	return result
}

func fixedNow() time.Time { return time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC) }

func TestFormatterFunc(t *testing.T) {
	called := false
	var received *compare.Result
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(result *compare.Result) ([]byte, error) {
			called = true
			received = result
			return []byte("test output"), nil
		},
	}

	result := buildTestResult(t)
	out, err := formatter.Format(result)
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Same(t, result, received)
	assert.Equal(t, []byte("test output"), out)
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{ID: "x", F: func(*compare.Result) ([]byte, error) { return []byte("content"), nil }}
	filename, err := WriteFormatted(formatter, buildTestResult(t), "txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "bestinvest_report_"))
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{ID: "err", F: func(*compare.Result) ([]byte, error) { return nil, fmt.Errorf("formatter error") }}
	filename, err := WriteFormatted(formatter, buildTestResult(t), "txt")
	assert.Error(t, err)
	assert.Empty(t, filename)
	assert.Contains(t, err.Error(), "formatter error")
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"console", "console-lite", "csv", "detailed-csv", "html", "json"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "verbose")

	tests := []struct {
		name string
		want string
		ext  string
	}{
		{"console", "console", "txt"},
		{"verbose", "console", "txt"},
		{" Console-Verbose ", "console", "txt"},
		{"table", "console-lite", "txt"},
		{"csv", "csv", "csv"},
		{"detailed-csv", "detailed-csv", "csv"},
		{"json", "json", "json"},
		{"html", "html", "html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GetFormatterByName(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.Name())
			assert.Equal(t, tt.ext, Extension(f))
		})
	}

	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestResult(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "MORTGAGE PREPAYMENT SUMMARY")
	assert.Contains(t, content, "Mortgage option (cash-flow modeled): $120451.")
	assert.Contains(t, content, "Top options (Aggressive):")
	assert.Contains(t, content, "1. SPY (S&P 500):")
	assert.Contains(t, content, "Best in aggressive: SPY")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{Now: fixedNow}.Format(buildTestResult(t))
	require.NoError(t, err)

	content := string(out)
	for _, want := range []string{
		"BESTINVESTMENT DETAILED REPORT",
		"Generated: 2026-10-14 09:30:00",
		"Active Scenario Tab: Aggressive",
		"Mortgage balance: $300000.00",
		"Mortgage APR: 6.00%",
		"Months analyzed: 360",
		"Amount allocated now: $20000.00",
		"Include tax breaks from mortgage interest: No",
		"Include dividends (reinvested): Yes",
		"LTCG tax assumed: 15.00% | Qualified dividend tax assumed: 15.00%",
		"Inflation assumed: 3.00% | Liquidation at horizon: Yes",
		"Mortgage equivalent future value (nominal): $120451.",
		"Estimated payoff acceleration: 57 months",
		"TOP RANKED OPTIONS (AFTER TAX)",
		"DETAILED BREAKDOWN (AGGRESSIVE)",
		"Returns as of: 2026-01-05 (embedded local dataset)",
		"https://example.com/data",
		"Assumptions & limits: This estimate is not financial advice.",
	} {
		assert.Contains(t, content, want)
	}
	assert.NotContains(t, content, "Monthly PMI")
}

func TestCSVFormatters(t *testing.T) {
	result := buildTestResult(t)

	out, err := CSVSummarizer{}.Format(result)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, []string{"conservative", "SPY"}, records[1][:2])

	out, err = DetailedCSVFormatter{}.Format(result)
	require.NoError(t, err)
	records, err = csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 7)
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestResult(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, `"analysis"`)
	assert.Contains(t, content, `"views"`)
	assert.Contains(t, content, `"SPY"`)
	assert.Contains(t, content, `"futureValue"`)
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{Now: fixedNow}.Format(buildTestResult(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "<!DOCTYPE html>")
	assert.Contains(t, content, "<title>BestInvestment Detailed Report</title>")
	assert.Contains(t, content, "Generated: 2026-10-14 09:30:00")
	assert.Contains(t, content, "Detailed Breakdown (Aggressive)")
	assert.Contains(t, content, "S&amp;P 500", "names must be escaped")
	assert.Contains(t, content, "(embedded local dataset)")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(1234.5))
	assert.Equal(t, "+$1.00", FormatSignedCurrency(1))
	assert.Equal(t, "$-1.00", FormatSignedCurrency(-1))
	assert.Equal(t, "4.50%", FormatPercentage(0.045))
	assert.Equal(t, "n/a", FormatCurrency(math.Inf(1)))
	assert.Equal(t, "n/a", FormatPercentage(math.NaN()))
	assert.Equal(t, "n/a", fixed(math.NaN(), 2))
	assert.Equal(t, "Yes", yesNo(true))
}

func TestSaveConfiguration(t *testing.T) {
	path := t.TempDir() + "/config.yaml"
	cfg := domain.DefaultConfiguration()
	require.NoError(t, SaveConfiguration(&cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loan:")
	assert.Contains(t, string(data), "view_scenario: moderate")
}
