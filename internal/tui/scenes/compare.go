package scenes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/bestinvest/internal/compare"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/tui/components"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuimsg"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuistyles"
)

var (
	keyPrevScenario = key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous scenario"))
	keyNextScenario = key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next scenario"))
)

// CompareModel shows the ranked breakdown for the active scenario
type CompareModel struct {
	result *compare.Result
	active domain.Scenario
	table  table.Model
	width  int
	height int
}

// NewCompareModel creates a new compare scene model
func NewCompareModel() *CompareModel {
	t := table.New(
		table.WithColumns(compareColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(tuistyles.ColorBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(tuistyles.ColorSecondary)
	t.SetStyles(styles)

	return &CompareModel{table: t, active: domain.ScenarioModerate}
}

func compareColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Ticker", Width: 7},
		{Title: "Name", Width: 24},
		{Title: "Annual Used", Width: 11},
		{Title: "After-Tax", Width: 10},
		{Title: "Nominal AT", Width: 14},
		{Title: "Real AT", Width: 14},
		{Title: "Vs Mortgage", Width: 14},
	}
}

// SetResult updates the analysis and active scenario
func (m *CompareModel) SetResult(result *compare.Result, active domain.Scenario) {
	m.result = result
	m.active = active
	m.refreshRows()
}

// SetSize updates the model dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if height > 20 {
		m.table.SetHeight(min(height-16, 15))
	}
}

func (m *CompareModel) refreshRows() {
	if m.result == nil {
		m.table.SetRows(nil)
		return
	}
	view, _ := m.result.View(m.active)
	rows := make([]table.Row, 0, len(view.Ranked))
	for i, r := range view.Ranked {
		rows = append(rows, table.Row{
			itoa(i + 1),
			r.Ticker,
			r.Name,
			tuistyles.FormatPercent(r.AnnualReturnUsed),
			tuistyles.FormatPercent(r.EffectiveAfterTaxAnnual),
			tuistyles.FormatCurrency(r.ProjectedAfterTax),
			tuistyles.FormatCurrency(r.ProjectedRealAfterTax),
			compare.SignedMoney(r.DeltaAfterTax),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// Selected returns the row under the cursor
func (m *CompareModel) Selected() (domain.ComparisonRow, bool) {
	if m.result == nil {
		return domain.ComparisonRow{}, false
	}
	view, _ := m.result.View(m.active)
	c := m.table.Cursor()
	if c < 0 || c >= len(view.Ranked) {
		return domain.ComparisonRow{}, false
	}
	return view.Ranked[c], true
}

// Update handles messages for the compare scene
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyPrevScenario):
			return m, scenarioCmd(components.NextScenario(m.active, -1))
		case key.Matches(msg, keyNextScenario):
			return m, scenarioCmd(components.NextScenario(m.active, 1))
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func scenarioCmd(s domain.Scenario) tea.Cmd {
	return func() tea.Msg { return tuimsg.ScenarioChangedMsg{Scenario: s} }
}

// View renders the compare scene
func (m *CompareModel) View() string {
	if m.result == nil {
		return tuistyles.BorderStyle.Render("No comparison available")
	}

	noteWidth := 100
	if m.width > 10 {
		noteWidth = min(m.width-4, 120)
	}
	note := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(noteWidth)

	sections := []string{
		components.ScenarioTabs(m.active),
		"",
		m.table.View(),
	}

	if row, ok := m.Selected(); ok {
		style := tuistyles.MetricTrendStyle(row.BeatsMortgage())
		sections = append(sections, "", style.Render(compare.TopItem(row)))
	}

	a := m.result.Analysis
	sections = append(sections,
		"",
		note.Render(compare.MortgageSummary(a)),
		note.Render(compare.TaxNote(a)),
		note.Render(compare.AssumptionsNote(a)),
		"",
		note.Render(compare.Disclaimer),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
