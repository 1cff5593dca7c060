package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuistyles"
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Glyph  rune
	Color  lipgloss.Color
}

// BalanceChart plots loan balances over time. Every series shares the x
// axis in months; shorter series stop where their data ends.
type BalanceChart struct {
	Title  string
	Series []*DataSeries
	Width  int
	Height int
}

// NewBalanceChart creates a new chart
func NewBalanceChart(title string) *BalanceChart {
	return &BalanceChart{Title: title, Width: 60, Height: 10}
}

// AddSeries adds a data series to the chart
func (c *BalanceChart) AddSeries(name string, points []float64, glyph rune, color lipgloss.Color) *BalanceChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Glyph: glyph, Color: color})
	return c
}

// WithSize sets the plot dimensions
func (c *BalanceChart) WithSize(width, height int) *BalanceChart {
	c.Width = width
	c.Height = height
	return c
}

func (c *BalanceChart) bounds() (months int, maxVal float64) {
	for _, s := range c.Series {
		if len(s.Points) > months {
			months = len(s.Points)
		}
		for _, v := range s.Points {
			maxVal = math.Max(maxVal, v)
		}
	}
	return months, maxVal
}

// Render returns the plotted chart with a y axis, month axis and legend
func (c *BalanceChart) Render() string {
	months, maxVal := c.bounds()
	if months == 0 || maxVal <= 0 || c.Width < 2 || c.Height < 2 {
		return tuistyles.InfoStyle.Render("No schedule to display")
	}

	grid := make([][]string, c.Height)
	for y := range grid {
		grid[y] = make([]string, c.Width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	// later series draw over earlier ones
	for _, s := range c.Series {
		style := lipgloss.NewStyle().Foreground(s.Color)
		for x := 0; x < c.Width; x++ {
			month := x * (months - 1) / (c.Width - 1)
			if month >= len(s.Points) {
				break
			}
			y := int(math.Round(s.Points[month] / maxVal * float64(c.Height-1)))
			grid[c.Height-1-y][x] = style.Render(string(s.Glyph))
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		sb.WriteString("\n")
	}
	for y, row := range grid {
		label := "        "
		switch y {
		case 0:
			label = fmt.Sprintf("%8s", shortMoney(maxVal))
		case c.Height - 1:
			label = fmt.Sprintf("%8s", "$0")
		}
		sb.WriteString(axisStyle.Render(label+" │"))
		sb.WriteString(strings.Join(row, ""))
		sb.WriteString("\n")
	}
	sb.WriteString(axisStyle.Render(strings.Repeat(" ", 9) + "└" + strings.Repeat("─", c.Width)))
	sb.WriteString("\n")
	sb.WriteString(axisStyle.Render(fmt.Sprintf("%10s%*s", "month 1", c.Width-3, fmt.Sprintf("month %d", months))))

	if len(c.Series) > 1 {
		sb.WriteString("\n")
		var legend []string
		for _, s := range c.Series {
			legend = append(legend, lipgloss.NewStyle().Foreground(s.Color).Render(string(s.Glyph))+" "+s.Name)
		}
		sb.WriteString(strings.Join(legend, "   "))
	}
	return sb.String()
}

func shortMoney(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.0fK", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
