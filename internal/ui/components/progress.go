package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/ui/theme"
)

// ProgressBar renders a labeled fraction as a fixed-width bar. Used for
// quiz position and overall mastery progress.
type ProgressBar struct {
	Label       string
	Fraction    float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a bar for a fraction in [0, 1]; out-of-range
// values are clamped at render time.
func NewProgressBar(label string, fraction float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Fraction: fraction, ShowPercent: showPercent, Width: width}
}

// View renders the bar. The label and percent readout eat into Width;
// the bar itself never drops below a few cells.
func (p ProgressBar) View() string {
	frac := p.Fraction
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	cells := p.Width - lipgloss.Width(b.String())
	if p.ShowPercent {
		cells -= 6
	}
	if cells < 4 {
		cells = 4
	}

	filled := int(float64(cells) * frac)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d%%", int(frac*100))))
	}
	return b.String()
}
