package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/bestinvest/internal/compare"
)

// CSVSummarizer implements the simple summary CSV output (best option per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *compare.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "BestTicker", "ProjectedAfterTax", "DeltaAfterTax", "GoalGapAfterTax", "MortgageFutureValue", "MortgageAnnualEquivalent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	m := result.Analysis.Mortgage
	for _, v := range result.Views {
		if len(v.Top) == 0 {
			continue
		}
		best := v.Top[0]
		row := []string{
			string(v.Scenario),
			best.Ticker,
			fixed(best.ProjectedAfterTax, 2),
			fixed(best.DeltaAfterTax, 2),
			fixed(best.GoalGapAfterTax, 2),
			fixed(m.FutureValue, 2),
			fixed(m.AnnualEquivalent, 6),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// DetailedCSVFormatter writes every asset/scenario row
type DetailedCSVFormatter struct{}

func (d DetailedCSVFormatter) Name() string { return "detailed-csv" }

func (d DetailedCSVFormatter) Format(result *compare.Result) ([]byte, error) {
	cf := &compare.CSVFormatter{}
	s, err := cf.Format(result)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// JSONFormatter renders indented JSON
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *compare.Result) ([]byte, error) {
	jf := &compare.JSONFormatter{Pretty: true}
	s, err := jf.Format(result)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
