package skillmap

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/skillgraph"
	"github.com/adasgupta/skillbridge/internal/ui/theme"
)

// Character cells are roughly twice as tall as wide; the canvas maps one
// vertical canvas unit to cellH and one horizontal unit to cellW so
// circles stay round-ish.
const (
	cellW = 7.0
	cellH = 14.0
)

type cell struct {
	ch    string
	style lipgloss.Style
}

// renderCanvas draws edges then nodes into a character grid, applying the
// viewport transform to every world coordinate.
func (s *Screen) renderCanvas(width, height int) string {
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{ch: " "}
		}
	}

	project := func(wx, wy float64) (int, int) {
		sx, sy := s.vp.Apply(wx, wy)
		return width/2 + int(sx/cellW), height/2 + int(sy/cellH)
	}

	edgeStyle := lipgloss.NewStyle().Foreground(theme.Border)
	for _, e := range s.graph.Edges {
		from, okF := s.pos[e.From]
		to, okT := s.pos[e.To]
		if !okF || !okT {
			continue
		}
		x0, y0 := project(from.X, from.Y)
		x1, y1 := project(to.X, to.Y)
		mark := "·"
		if e.Kind == skillgraph.EdgeNeeds {
			mark = "¨"
		}
		drawLine(grid, x0, y0, x1, y1, mark, edgeStyle)
	}

	selectedName := ""
	if node, ok := s.selectedNode(); ok {
		selectedName = node.Name
	}

	for _, n := range s.graph.Nodes {
		pt, ok := s.pos[n.Name]
		if !ok {
			continue
		}
		x, y := project(pt.X, pt.Y)

		glyph := "●"
		style := lipgloss.NewStyle().Foreground(statusColor(s.graph.Status(n.Name, s.mastery.Mastered())))
		if n.Ring == skillgraph.RingCenter {
			glyph = "◉"
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		if n.Name == selectedName {
			glyph = "◎"
			style = style.Bold(true).Underline(true)
		}
		put(grid, x, y, glyph, style)

		label := n.Label
		if n.Ring != skillgraph.RingCenter && s.mastery.IsPinned(n.Name) {
			label += "*"
		}
		labelStyle := style
		if n.Name != selectedName {
			labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		drawLabel(grid, x+2, y, label, labelStyle)
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(c.style.Render(c.ch))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func put(grid [][]cell, x, y int, ch string, style lipgloss.Style) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = cell{ch: ch, style: style}
}

func drawLabel(grid [][]cell, x, y int, label string, style lipgloss.Style) {
	for i, r := range label {
		put(grid, x+i, y, string(r), style)
	}
}

// drawLine is Bresenham over grid cells. It never overwrites a non-space
// cell, so node glyphs and labels win over edges.
func drawLine(grid [][]cell, x0, y0, x1, y1 int, mark string, style lipgloss.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) && grid[y0][x0].ch == " " {
			grid[y0][x0] = cell{ch: mark, style: style}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
