package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuistyles"
)

// ScenarioTabs renders the market-condition tab strip with the active tab highlighted
func ScenarioTabs(active domain.Scenario) string {
	tabs := make([]string, 0, len(domain.AllScenarios))
	for i, s := range domain.AllScenarios {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == active {
			tabs = append(tabs, tuistyles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, tuistyles.InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// NextScenario returns the scenario after s, wrapping around
func NextScenario(s domain.Scenario, step int) domain.Scenario {
	n := len(domain.AllScenarios)
	for i, candidate := range domain.AllScenarios {
		if candidate == s {
			return domain.AllScenarios[((i+step)%n+n)%n]
		}
	}
	return domain.ScenarioModerate
}
