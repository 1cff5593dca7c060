package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/tui/components"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuistyles"
)

// HomeModel is the mortgage dashboard: equivalent-return cards, the active
// scenario's quick result and the balance chart
type HomeModel struct {
	result *compare.Result
	active domain.Scenario
	width  int
	height int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{active: domain.ScenarioModerate}
}

// SetResult updates the analysis to display
func (m *HomeModel) SetResult(result *compare.Result, active domain.Scenario) {
	m.result = result
	m.active = active
}

// SetSize updates the scene dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the home scene
func (m *HomeModel) View() string {
	if m.result == nil {
		return tuistyles.BorderStyle.Render("No results yet.\n\nPress p to edit inputs.")
	}

	a := m.result.Analysis
	mort := a.Mortgage

	equivalent := components.NewRateCard("Mortgage equivalent", mort.AnnualEquivalent).
		WithDescription("annualized after tax/PMI")
	if mort.Approximated {
		equivalent.WithDescription("after-tax loan rate (no IRR)")
	}

	cards := []*components.MetricCard{
		equivalent,
		components.NewMoneyCard("Future value", mort.FutureValue).
			WithDescription("real " + tuistyles.FormatCurrency(a.MortgageReal)),
		components.NewMoneyCard("Interest saved", mort.InterestSaved).
			WithDescription("PMI saved " + tuistyles.FormatCurrency(mort.PMISaved)),
		components.NewMetricCard("Payoff accelerated", pluralMonths(mort.MonthsSaved)),
	}

	if best, ok := a.Best[m.active]; ok && best != nil {
		cards = append(cards, components.NewMoneyCard("Best "+string(m.active)+": "+best.Ticker, best.ProjectedAfterTax).
			WithDelta(best.DeltaAfterTax, " vs mortgage"))
	}

	columns := 3
	if m.width >= 140 {
		columns = 5
	}

	sections := []string{
		components.ScenarioTabs(m.active),
		"",
		components.MetricGrid(cards, columns),
	}

	if view, ok := m.result.View(m.active); ok && view.QuickResult != "" {
		sections = append(sections, "", lipgloss.NewStyle().Bold(true).Render(view.QuickResult))
	}

	chartWidth := 60
	if m.width > 20 {
		chartWidth = min(m.width-16, 100)
	}
	chart := components.NewBalanceChart("Remaining balance").
		WithSize(chartWidth, 8).
		AddSeries("baseline", balances(mort.Baseline), '·', tuistyles.ColorChartLine1).
		AddSeries("with prepayment", balances(mort.WithPrepayment), '•', tuistyles.ColorChartLine2)
	sections = append(sections, "", chart.Render())

	if len(a.Priorities) > 0 {
		var sb strings.Builder
		for _, p := range a.Priorities {
			sb.WriteString("• " + p + "\n")
		}
		sections = append(sections, "", tuistyles.InfoStyle.Render(strings.TrimRight(sb.String(), "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func balances(schedule domain.AmortizationResult) []float64 {
	points := make([]float64, len(schedule.Records))
	for i, r := range schedule.Records {
		points[i] = r.BalanceStart
	}
	return points
}

func pluralMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}
