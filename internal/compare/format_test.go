package compare

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/bestinvest/internal/domain"
)

func testResult(t *testing.T) *Result {
	t.Helper()
	result, err := NewCompareEngine(nil).Compare(context.Background(), testRequest(), CompareOptions{Assets: testAssets()})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	return result
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}
	output := formatter.Format(testResult(t))

	for _, want := range []string{
		"MORTGAGE PREPAYMENT VS INVESTING",
		"TOP RANKED OPTIONS (AFTER TAX)",
		"DETAILED BREAKDOWN (MODERATE)",
		"Mortgage option (cash-flow modeled)",
		"Best in moderate: AAA",
		"PRIORITIES",
		"no internal rate of return was found",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output", want)
		}
	}
	if strings.Contains(output, "DETAILED BREAKDOWN (AGGRESSIVE)") {
		t.Error("Only the active scenario should be broken down by default")
	}
}

func TestTableFormatter_AllScenarios(t *testing.T) {
	formatter := &TableFormatter{Scenarios: domain.AllScenarios}
	output := formatter.Format(testResult(t))

	for _, s := range domain.AllScenarios {
		if !strings.Contains(output, "DETAILED BREAKDOWN ("+strings.ToUpper(s.Title())+")") {
			t.Errorf("Expected breakdown for %s", s)
		}
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}
	output := formatter.FormatCompact(testResult(t))

	if !strings.HasPrefix(output, "Mortgage: 6.00% | ") {
		t.Errorf("Unexpected prefix: %s", output)
	}
	if strings.Count(output, " | ") != 3 {
		t.Errorf("Expected three scenario segments: %s", output)
	}
}

func TestTableFormatter_Helpers(t *testing.T) {
	tf := &TableFormatter{}

	tests := []struct {
		input float64
		want  string
	}{
		{1500000, "1.50M"},
		{120451.5, "120.5K"},
		{999, "999"},
		{-2500, "-2.5K"},
	}
	for _, tt := range tests {
		if got := tf.formatDecimal(tt.input); got != tt.want {
			t.Errorf("formatDecimal(%v) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if tf.deltaSymbol(1) != "+" || tf.deltaSymbol(-1) != "-" || tf.deltaSymbol(0) != " " {
		t.Error("Unexpected delta symbols")
	}
	if got := tf.truncate("Vanguard Total Stock Market", 10); got != "Vanguar..." {
		t.Errorf("truncate = %s", got)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}
	output, err := formatter.Format(testResult(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(output)).ReadAll()
	if err != nil {
		t.Fatalf("Invalid CSV: %v", err)
	}
	if len(records) != 10 {
		t.Fatalf("Expected header plus 9 rows, got %d", len(records))
	}
	if records[0][0] != "Scenario" || records[0][2] != "Ticker" {
		t.Errorf("Unexpected header: %v", records[0])
	}
	if records[1][0] != "conservative" || records[1][1] != "1" || records[1][2] != "AAA" {
		t.Errorf("Unexpected first row: %v", records[1])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		formatter := &JSONFormatter{Pretty: pretty}
		output, err := formatter.Format(testResult(t))
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}

		var decoded struct {
			Analysis struct {
				CashoutGoalDefaulted bool `json:"cashoutGoalDefaulted"`
				Rows                 []domain.ComparisonRow
			} `json:"analysis"`
			Views []ScenarioView `json:"views"`
		}
		if err := json.Unmarshal([]byte(output), &decoded); err != nil {
			t.Fatalf("Invalid JSON: %v", err)
		}
		if !decoded.Analysis.CashoutGoalDefaulted || len(decoded.Analysis.Rows) != 9 || len(decoded.Views) != 3 {
			t.Errorf("Unexpected JSON content (pretty=%v)", pretty)
		}
		if pretty != strings.Contains(output, "\n  ") {
			t.Errorf("Indentation mismatch (pretty=%v)", pretty)
		}
	}
}
