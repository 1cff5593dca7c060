package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuistyles"
)

// AssetsModel browses the asset dataset and the scenario returns derived from it
type AssetsModel struct {
	assets        []domain.AssetProfile
	multipliers   domain.ScenarioMultipliers
	dataset       domain.DatasetInfo
	selectedIndex int
	width         int
	height        int
}

// NewAssetsModel creates a new assets scene model
func NewAssetsModel() *AssetsModel {
	return &AssetsModel{multipliers: domain.DefaultMultipliers()}
}

// SetAssets updates the asset list
func (m *AssetsModel) SetAssets(assets []domain.AssetProfile, multipliers domain.ScenarioMultipliers, info domain.DatasetInfo) {
	m.assets = assets
	m.multipliers = multipliers.OrDefault()
	m.dataset = info
	if m.selectedIndex >= len(m.assets) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions
func (m *AssetsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted asset
func (m *AssetsModel) Selected() (domain.AssetProfile, bool) {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.assets) {
		return domain.AssetProfile{}, false
	}
	return m.assets[m.selectedIndex], true
}

// Update handles messages for the assets scene
func (m *AssetsModel) Update(msg tea.Msg) (*AssetsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyUp):
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}
		case key.Matches(msg, keyDown):
			if m.selectedIndex < len(m.assets)-1 {
				m.selectedIndex++
			}
		}
	}
	return m, nil
}

// View renders the asset list and the selected asset's details
func (m *AssetsModel) View() string {
	if len(m.assets) == 0 {
		return tuistyles.BorderStyle.Render("No assets loaded")
	}

	cursorStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)
	highlight := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	var list strings.Builder
	for i, a := range m.assets {
		line := fmt.Sprintf("%-6s %-28s %8s", a.Ticker, truncate(a.Name, 28), tuistyles.FormatPercent(a.BaselineAnnualReturn))
		if i == m.selectedIndex {
			list.WriteString(cursorStyle.Render("❯ ") + highlight.Render(line))
		} else {
			list.WriteString("  " + line)
		}
		list.WriteString("\n")
	}

	details := ""
	if a, ok := m.Selected(); ok {
		var sb strings.Builder
		sb.WriteString(highlight.Render(a.Ticker+" "+a.Name) + "\n\n")
		sb.WriteString(fmt.Sprintf("Baseline total return  %s\n", tuistyles.FormatPercent(a.BaselineAnnualReturn)))
		sb.WriteString(fmt.Sprintf("Dividend yield         %s\n\n", tuistyles.FormatPercent(a.DividendYield)))
		for _, s := range domain.AllScenarios {
			r := compare.ScenarioReturn(a.BaselineAnnualReturn, m.multipliers.For(s))
			sb.WriteString(fmt.Sprintf("%-13s x%.2f  %s\n", s.Title(), m.multipliers.For(s), tuistyles.FormatPercent(r)))
		}
		if a.ProxyNote != "" {
			sb.WriteString("\n" + muted.Render(a.ProxyNote))
		}
		details = tuistyles.BorderStyle.Width(48).Render(sb.String())
	}

	source := muted.Render("Returns as of " + m.dataset.SourceAsOf)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", details),
		"",
		source,
	)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
