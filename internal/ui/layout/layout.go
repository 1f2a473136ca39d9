// Package layout draws the frame every screen sits inside: a header bar
// with the mastery readout, the screen body, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/ui/theme"
)

// Screens assume at least this much room; below it we show a resize
// prompt instead of a broken frame.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the top bar: product name on the left, the active
// screen's title centered, mastered count and daily commitment on the
// right.
func RenderHeader(title string, mastered, dailyHours, width int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  SkillBridge")

	status := lipgloss.NewStyle().Foreground(theme.StatusMastered).Render(fmt.Sprintf("✔ %d mastered", mastered)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("◷ %dh/day", dailyHours))

	inner := width - 4
	if inner < 0 {
		inner = 0
	}

	// Center the title over the full bar, then overlay name and status
	// by carving their widths out of the centered line's padding.
	centered := lipgloss.PlaceHorizontal(inner, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(title))
	line := overlayEnds(centered, name, status)

	return chromeBar(width).Render(line)
}

// RenderFooter draws the bottom bar of key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return chromeBar(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, body, and footer, stretching the body to
// fill whatever height the bars leave over.
func RenderFrame(header, content, footer string, width, height int) string {
	body := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if body < 0 {
		body = 0
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}

func chromeBar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// overlayEnds lays left and right over the ends of a padded base line,
// trimming the base's padding so total width is preserved.
func overlayEnds(base, left, right string) string {
	lw := lipgloss.Width(left)
	rw := lipgloss.Width(right)
	bw := lipgloss.Width(base)

	trimmed := strings.TrimLeft(base, " ")
	leadPad := bw - lipgloss.Width(trimmed)
	trimmed = strings.TrimRight(trimmed, " ")
	tailPad := bw - leadPad - lipgloss.Width(trimmed)

	leftGap := leadPad - lw
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := tailPad - rw
	if rightGap < 1 {
		rightGap = 1
	}
	return left + strings.Repeat(" ", leftGap) + trimmed + strings.Repeat(" ", rightGap) + right
}
