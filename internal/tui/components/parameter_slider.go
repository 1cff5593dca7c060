package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/bestinvest/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable input with a visual slider
type ParameterSlider struct {
	ID        string // identifies the configuration field the slider edits
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Prefix    string // e.g. "$"
	Unit      string // e.g. "%"
	Format    string // e.g. "%.2f"
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a new parameter slider
func NewParameterSlider(id, label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		ID:     id,
		Label:  label,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  30,
	}
	p.SetValue(value)
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithPrefix sets the value prefix
func (p *ParameterSlider) WithPrefix(prefix string) *ParameterSlider {
	p.Prefix = prefix
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// Increment increases the value by one step, stopping at Max
func (p *ParameterSlider) Increment() {
	p.SetValue(p.Value + p.Step)
}

// Decrement decreases the value by one step, stopping at Min
func (p *ParameterSlider) Decrement() {
	p.SetValue(p.Value - p.Step)
}

// SetValue clamps to [Min, Max] and snaps to the step grid
func (p *ParameterSlider) SetValue(value float64) {
	if p.Step > 0 {
		value = p.Min + math.Round((value-p.Min)/p.Step)*p.Step
	}
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value as a fraction of the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

func (p *ParameterSlider) display(v float64) string {
	return p.Prefix + fmt.Sprintf(p.Format, v) + p.Unit
}

// Render returns the styled slider as a single line
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle.Width(28)
	valueStyle := tuistyles.ParameterValueStyle.Width(14)
	cursor := "  "
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
		cursor = "▸ "
	}

	return cursor + labelStyle.Render(p.Label) + valueStyle.Render(p.display(p.Value)) + " " + p.renderBar()
}

func (p *ParameterSlider) renderBar() string {
	filled := int(math.Round(float64(p.Width-1) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width-1 {
		filled = p.Width - 1
	}

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled) + "●"))
	bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", p.Width-1-filled)))
	bar.WriteString("]")

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return bar.String() + " " + rangeStyle.Render(p.display(p.Min)+" - "+p.display(p.Max))
}
