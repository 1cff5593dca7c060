package compare

import (
	"fmt"

	"github.com/rgehrsitz/bestinvest/internal/domain"
)

// TopCount is the number of ranked options shown per scenario
const TopCount = 3

// CompareError represents comparison errors
type CompareError struct {
	Operation string `json:"operation"`
	Message   string `json:"message"`
	Cause     error  `json:"-"`
}

func (e *CompareError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compare error in %s: %s (caused by: %v)", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("compare error in %s: %s", e.Operation, e.Message)
}

func (e *CompareError) Unwrap() error {
	return e.Cause
}

// ScenarioView is the ranked presentation of a single scenario
type ScenarioView struct {
	Scenario    domain.Scenario        `json:"scenario"`
	Ranked      []domain.ComparisonRow `json:"ranked"`
	Top         []domain.ComparisonRow `json:"top"`
	QuickResult string                 `json:"quickResult"`
}

// Result bundles an analysis with its per-scenario views
type Result struct {
	Analysis *domain.Analysis `json:"analysis"`
	Views    []ScenarioView   `json:"views"`
}

// NewResult ranks every scenario of an analysis
func NewResult(analysis *domain.Analysis) *Result {
	views := make([]ScenarioView, 0, len(domain.AllScenarios))
	for _, s := range domain.AllScenarios {
		ranked := RankScenario(analysis.Rows, s)
		top := ranked
		if len(top) > TopCount {
			top = top[:TopCount]
		}
		views = append(views, ScenarioView{
			Scenario:    s,
			Ranked:      ranked,
			Top:         top,
			QuickResult: QuickResult(analysis, s),
		})
	}
	return &Result{Analysis: analysis, Views: views}
}

// View returns the view for a scenario
func (r *Result) View(s domain.Scenario) (ScenarioView, bool) {
	for _, v := range r.Views {
		if v.Scenario == s {
			return v, true
		}
	}
	return ScenarioView{}, false
}

// ActiveView returns the view for the requested scenario
func (r *Result) ActiveView() ScenarioView {
	v, _ := r.View(r.Analysis.Request.ViewScenario)
	return v
}
