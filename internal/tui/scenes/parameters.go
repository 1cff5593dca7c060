package scenes

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/bestinvest/internal/config"
	"github.com/rgehrsitz/bestinvest/internal/domain"
	"github.com/rgehrsitz/bestinvest/internal/tui/components"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuimsg"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuistyles"
)

var (
	keyUp         = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous field"))
	keyDown       = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next field"))
	keyDecrement  = key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "decrease"))
	keyIncrement  = key.NewBinding(key.WithKeys("right", "+", "="), key.WithHelp("→/+", "increase"))
	keyDeductible = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle interest deduction"))
	keyDividends  = key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "toggle dividend reinvestment"))
	keyLiquidate  = key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "toggle liquidation tax"))
	keyApply      = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "recalculate"))
	keyReset      = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo changes"))
)

// field binds a slider to a configuration value
type field struct {
	slider *components.ParameterSlider
	get    func(cfg *domain.Configuration) float64
	set    func(cfg *domain.Configuration, v float64)
}

func decimalField(ptr func(*domain.Configuration) *decimal.Decimal) (get func(*domain.Configuration) float64, set func(*domain.Configuration, float64)) {
	get = func(cfg *domain.Configuration) float64 { return ptr(cfg).InexactFloat64() }
	set = func(cfg *domain.Configuration, v float64) { *ptr(cfg) = decimal.NewFromFloat(v) }
	return get, set
}

// ParametersModel edits the calculation inputs with sliders
type ParametersModel struct {
	original *domain.Configuration
	working  domain.Configuration
	fields   []field
	focused  int
	modified bool
	now      func() time.Time
	width    int
	height   int
}

// NewParametersModel creates a new parameters scene model
func NewParametersModel() *ParametersModel {
	return &ParametersModel{now: time.Now}
}

// SetConfiguration loads the configuration being edited
func (m *ParametersModel) SetConfiguration(cfg *domain.Configuration) {
	if cfg == nil {
		return
	}
	m.original = cfg
	m.working = *cfg
	m.modified = false
	m.buildFields()
}

// Configuration returns a copy of the edited configuration
func (m *ParametersModel) Configuration() *domain.Configuration {
	c := m.working
	return &c
}

// Modified reports whether there are unapplied edits
func (m *ParametersModel) Modified() bool {
	return m.modified
}

func (m *ParametersModel) buildFields() {
	balanceGet, balanceSet := decimalField(func(c *domain.Configuration) *decimal.Decimal { return &c.Loan.Balance })
	rateGet, rateSet := decimalField(func(c *domain.Configuration) *decimal.Decimal { return &c.Loan.RatePercent })
	pmiGet, pmiSet := decimalField(func(c *domain.Configuration) *decimal.Decimal { return &c.Loan.MonthlyPMI })
	amountGet, amountSet := decimalField(func(c *domain.Configuration) *decimal.Decimal { return &c.Investment.Amount })
	marginalGet, marginalSet := decimalField(func(c *domain.Configuration) *decimal.Decimal { return &c.Tax.MarginalRatePercent })
	shareGet, shareSet := decimalField(func(c *domain.Configuration) *decimal.Decimal { return &c.Tax.DeductibleSharePercent })
	ltcgGet, ltcgSet := decimalField(func(c *domain.Configuration) *decimal.Decimal { return &c.Tax.LTCGRatePercent })
	qdivGet, qdivSet := decimalField(func(c *domain.Configuration) *decimal.Decimal { return &c.Tax.QdivRatePercent })
	inflGet, inflSet := decimalField(func(c *domain.Configuration) *decimal.Decimal { return &c.Investment.InflationRatePercent })

	m.fields = []field{
		{components.NewParameterSlider("balance", "Mortgage balance", 0, 0, 2000000, 5000).WithPrefix("$").WithFormat("%.0f"), balanceGet, balanceSet},
		{components.NewParameterSlider("rate", "Mortgage APR", 0, 0, 15, 0.125).WithUnit("%").WithFormat("%.3f"), rateGet, rateSet},
		{components.NewParameterSlider("months", "Months left", 0, 1, 480, 1).WithFormat("%.0f"),
			func(c *domain.Configuration) float64 { return float64(config.ResolveMonthsLeft(&c.Loan, m.now())) },
			func(c *domain.Configuration, v float64) {
				c.Loan.Mode = domain.MonthsModeDirect
				c.Loan.MonthsLeft = int(v)
			}},
		{components.NewParameterSlider("pmi", "Monthly PMI", 0, 0, 1000, 10).WithPrefix("$").WithFormat("%.0f"), pmiGet, pmiSet},
		{components.NewParameterSlider("amount", "Amount allocated now", 0, 1000, 500000, 1000).WithPrefix("$").WithFormat("%.0f"), amountGet, amountSet},
		{components.NewParameterSlider("marginal", "Marginal tax rate", 0, 0, 60, 1).WithUnit("%").WithFormat("%.0f"), marginalGet, marginalSet},
		{components.NewParameterSlider("share", "Deductible share", 0, 0, 100, 5).WithUnit("%").WithFormat("%.0f"), shareGet, shareSet},
		{components.NewParameterSlider("ltcg", "LTCG tax rate", 0, 0, 50, 0.5).WithUnit("%").WithFormat("%.1f"), ltcgGet, ltcgSet},
		{components.NewParameterSlider("qdiv", "Qualified dividend tax", 0, 0, 50, 0.5).WithUnit("%").WithFormat("%.1f"), qdivGet, qdivSet},
		{components.NewParameterSlider("inflation", "Inflation", 0, -5, 20, 0.25).WithUnit("%").WithFormat("%.2f"), inflGet, inflSet},
	}

	for i := range m.fields {
		f := &m.fields[i]
		f.slider.SetValue(f.get(&m.working))
	}
	if m.focused >= len(m.fields) {
		m.focused = 0
	}
	m.syncFocus()
}

func (m *ParametersModel) syncFocus() {
	for i := range m.fields {
		m.fields[i].slider.IsFocused = i == m.focused
	}
}

// SetSize updates the scene dimensions
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the parameters scene
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.fields) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keyUp):
		if m.focused > 0 {
			m.focused--
		}
		m.syncFocus()
	case key.Matches(keyMsg, keyDown):
		if m.focused < len(m.fields)-1 {
			m.focused++
		}
		m.syncFocus()
	case key.Matches(keyMsg, keyDecrement):
		m.adjust((*components.ParameterSlider).Decrement)
	case key.Matches(keyMsg, keyIncrement):
		m.adjust((*components.ParameterSlider).Increment)
	case key.Matches(keyMsg, keyDeductible):
		m.working.Tax.Deductible = !m.working.Tax.Deductible
		m.modified = true
	case key.Matches(keyMsg, keyDividends):
		m.working.Investment.IncludeDividends = !m.working.Investment.IncludeDividends
		m.modified = true
	case key.Matches(keyMsg, keyLiquidate):
		m.working.Investment.LiquidateAtHorizon = !m.working.Investment.LiquidateAtHorizon
		m.modified = true
	case key.Matches(keyMsg, keyReset):
		if m.original != nil {
			m.SetConfiguration(m.original)
		}
	case key.Matches(keyMsg, keyApply):
		cfg := m.Configuration()
		m.original = cfg
		m.modified = false
		return m, func() tea.Msg { return tuimsg.ParametersChangedMsg{Config: cfg} }
	}
	return m, nil
}

func (m *ParametersModel) adjust(step func(*components.ParameterSlider)) {
	f := &m.fields[m.focused]
	step(f.slider)
	f.set(&m.working, f.slider.Value)
	m.modified = true
}

// View renders the parameters scene
func (m *ParametersModel) View() string {
	if len(m.fields) == 0 {
		return tuistyles.BorderStyle.Render("No configuration loaded")
	}

	var sb strings.Builder
	for _, f := range m.fields {
		sb.WriteString(f.slider.Render())
		sb.WriteString("\n")
	}

	toggles := []string{
		toggle("Interest deduction", m.working.Tax.Deductible),
		toggle("Reinvest dividends", m.working.Investment.IncludeDividends),
		toggle("Liquidation tax at horizon", m.working.Investment.LiquidateAtHorizon),
	}

	status := tuistyles.InfoStyle.Render("inputs match the last calculation")
	if m.modified {
		status = tuistyles.WarningStyle.Render("unapplied changes: press enter to recalculate")
	}

	var help []string
	for _, b := range []key.Binding{keyUp, keyDown, keyDecrement, keyIncrement, keyDeductible, keyDividends, keyLiquidate, keyApply, keyReset} {
		h := b.Help()
		help = append(help, tuistyles.HelpKeyStyle.Render(h.Key)+" "+tuistyles.HelpDescStyle.Render(h.Desc))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sb.String(),
		strings.Join(toggles, "   "),
		"",
		status,
		"",
		strings.Join(help, " • "),
	)
}

func toggle(label string, on bool) string {
	box := "[ ]"
	if on {
		box = tuistyles.ParameterValueStyle.Render("[x]")
	}
	return box + " " + label
}
