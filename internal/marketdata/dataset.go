// Package marketdata loads the historical asset-return dataset.
package marketdata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rgehrsitz/bestinvest/internal/domain"
)

// ModelSourceLinks are the tax references the model itself relies on
var ModelSourceLinks = []string{
	"https://www.irs.gov/taxtopics/tc409",
	"https://www.irs.gov/publications/p550",
	"https://www.irs.gov/publications/p936",
}

// Dataset mirrors the assets.json document
type Dataset struct {
	SourceAsOf        string         `json:"source_as_of"`
	Methodology       string         `json:"methodology"`
	Sources           []string       `json:"sources"`
	MarketMultipliers *MultiplierSet `json:"market_condition_multipliers,omitempty"`
	Assets            []Asset        `json:"assets"`

	embedded bool
}

// MultiplierSet is the raw multiplier object; fields may be missing
type MultiplierSet struct {
	Conservative *float64 `json:"conservative,omitempty"`
	Moderate     *float64 `json:"moderate,omitempty"`
	Aggressive   *float64 `json:"aggressive,omitempty"`
}

// Asset is one entry of the assets array
type Asset struct {
	Ticker         string   `json:"ticker"`
	Name           string   `json:"name"`
	DividendYield  float64  `json:"dividend_yield"`
	Conservative   *float64 `json:"conservative,omitempty"`
	Moderate       *float64 `json:"moderate,omitempty"`
	Aggressive     *float64 `json:"aggressive,omitempty"`
	Baseline50yAvg *float64 `json:"baseline_50y_avg,omitempty"`
	ProxyNote      string   `json:"proxy_note,omitempty"`
}

// Baseline returns baseline_50y_avg, falling back to the moderate rate
func (a Asset) Baseline() float64 {
	if a.Baseline50yAvg != nil {
		return *a.Baseline50yAvg
	}
	if a.Moderate != nil {
		return *a.Moderate
	}
	return 0
}

// Decode reads a dataset document
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to parse asset dataset: %w", err)
	}
	if len(ds.Assets) == 0 {
		return nil, fmt.Errorf("asset dataset contains no assets")
	}
	for i, a := range ds.Assets {
		if a.Ticker == "" {
			return nil, fmt.Errorf("asset %d: ticker is required", i)
		}
	}
	return &ds, nil
}

// LoadDataset reads a dataset from path
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset dataset %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Embedded reports whether the dataset is the built-in fallback
func (ds *Dataset) Embedded() bool {
	return ds.embedded
}

// Profiles converts the assets into engine profiles, in file order
func (ds *Dataset) Profiles() []domain.AssetProfile {
	profiles := make([]domain.AssetProfile, 0, len(ds.Assets))
	for _, a := range ds.Assets {
		yield := a.DividendYield
		if yield < 0 {
			yield = 0
		}
		profiles = append(profiles, domain.AssetProfile{
			Ticker:               a.Ticker,
			Name:                 a.Name,
			BaselineAnnualReturn: a.Baseline(),
			DividendYield:        yield,
			ProxyNote:            a.ProxyNote,
		})
	}
	return profiles
}

// Multipliers returns the scenario multipliers. A missing or invalid set
// is replaced by the default set as a whole.
func (ds *Dataset) Multipliers() domain.ScenarioMultipliers {
	m := ds.MarketMultipliers
	if m == nil || m.Conservative == nil || m.Moderate == nil || m.Aggressive == nil {
		return domain.DefaultMultipliers()
	}
	return domain.ScenarioMultipliers{
		Conservative: *m.Conservative,
		Moderate:     *m.Moderate,
		Aggressive:   *m.Aggressive,
	}.OrDefault()
}

// SourceLinks merges the dataset sources with ModelSourceLinks, dropping
// duplicates and keeping first-seen order
func (ds *Dataset) SourceLinks() []string {
	seen := make(map[string]bool)
	var links []string
	for _, group := range [][]string{ds.Sources, ModelSourceLinks} {
		for _, u := range group {
			if u == "" || seen[u] {
				continue
			}
			seen[u] = true
			links = append(links, u)
		}
	}
	return links
}

// SourceLabel is the as-of date shown to users, marked when embedded
func (ds *Dataset) SourceLabel() string {
	if ds.embedded {
		return ds.SourceAsOf + " (embedded local dataset)"
	}
	return ds.SourceAsOf
}

// Info summarizes the dataset for reports
func (ds *Dataset) Info() domain.DatasetInfo {
	return domain.DatasetInfo{
		SourceAsOf:  ds.SourceLabel(),
		Methodology: ds.Methodology,
		SourceLinks: ds.SourceLinks(),
		Embedded:    ds.embedded,
	}
}
