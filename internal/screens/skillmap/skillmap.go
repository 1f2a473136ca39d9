// Package skillmap renders the radial skill graph on a pannable,
// zoomable character canvas. The graph itself is rebuilt from the
// analysis result whenever the prerequisite fetch lands or the mastery
// set changes; the viewport transform only affects drawing.
package skillmap

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/analysis"
	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/nav"
	"github.com/adasgupta/skillbridge/internal/prereqmap"
	"github.com/adasgupta/skillbridge/internal/quiz"
	"github.com/adasgupta/skillbridge/internal/radial"
	"github.com/adasgupta/skillbridge/internal/screens/quizscreen"
	"github.com/adasgupta/skillbridge/internal/skillgraph"
	"github.com/adasgupta/skillbridge/internal/ui/components"
	"github.com/adasgupta/skillbridge/internal/ui/layout"
	"github.com/adasgupta/skillbridge/internal/ui/theme"
	"github.com/adasgupta/skillbridge/internal/viewport"
)

// panStep is the translate distance per arrow key press, in canvas units.
const panStep = 20.0

// zoomStep is the per-keypress zoom factor.
const zoomStep = 1.15

// prereqMsg delivers a finished prerequisite fetch. The generation
// counter lets the screen discard results that arrive after a reload.
type prereqMsg struct {
	gen     int
	prereqs prereqmap.Map
}

// Screen is the skill map screen.
type Screen struct {
	result  *analysis.Result
	mastery *mastery.Service
	fetcher *prereqmap.Client
	quizzes quiz.Provider

	graph *skillgraph.Graph
	pos   map[string]radial.Point
	vp    *viewport.Viewport

	gen      int
	fetching bool
	selected int // index into selectable()

	searching bool
	search    components.TextInput
}

var _ nav.Screen = (*Screen)(nil)

// New creates the skill map screen. The graph starts without prerequisite
// edges; Init kicks off the fetch that fills them in.
func New(result *analysis.Result, m *mastery.Service, fetcher *prereqmap.Client, quizzes quiz.Provider) *Screen {
	s := &Screen{
		result:  result,
		mastery: m,
		fetcher: fetcher,
		quizzes: quizzes,
		vp:      viewport.New(1.0),
	}
	s.rebuild(nil)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.fetchCmd()
}

// fetchCmd starts a prerequisite fetch for the current generation.
func (s *Screen) fetchCmd() tea.Cmd {
	if s.fetcher == nil {
		return nil
	}
	s.gen++
	s.fetching = true
	gen := s.gen
	fetcher := s.fetcher
	return func() tea.Msg {
		return prereqMsg{gen: gen, prereqs: fetcher.Fetch(context.Background())}
	}
}

// rebuild recomputes graph and layout. Selection is clamped, not chased;
// after a rebuild the cursor may land on a different skill.
func (s *Screen) rebuild(prereqs prereqmap.Map) {
	s.graph = skillgraph.Build(s.result.Detected, s.result.MissingCore, s.result.MissingOptional, prereqs)
	s.pos = radial.Layout(s.graph, 0, 0)
	if n := len(s.selectable()); n > 0 && s.selected >= n {
		s.selected = n - 1
	}
}

// selectable lists every node except the center, in ring order.
func (s *Screen) selectable() []skillgraph.Node {
	nodes := make([]skillgraph.Node, 0, len(s.graph.Nodes))
	for _, n := range s.graph.Nodes {
		if n.Ring != skillgraph.RingCenter {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (s *Screen) selectedNode() (skillgraph.Node, bool) {
	nodes := s.selectable()
	if len(nodes) == 0 {
		return skillgraph.Node{}, false
	}
	if s.selected < 0 || s.selected >= len(nodes) {
		return nodes[0], true
	}
	return nodes[s.selected], true
}

func (s *Screen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case prereqMsg:
		if msg.gen != s.gen {
			return s, nil // stale fetch, screen has moved on
		}
		s.fetching = false
		s.rebuild(msg.prereqs)
		return s, nil

	case tea.KeyMsg:
		if s.searching {
			if msg.String() == "enter" {
				s.searching = false
				s.jumpTo(s.search.Value())
				return s, nil
			}
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "left":
			s.vp.Pan(panStep, 0)
		case "right":
			s.vp.Pan(-panStep, 0)
		case "up":
			s.vp.Pan(0, panStep)
		case "down":
			s.vp.Pan(0, -panStep)
		case "+", "=":
			s.vp.ZoomBy(zoomStep)
		case "-", "_":
			s.vp.ZoomBy(1 / zoomStep)
		case "0", "r":
			s.vp.Reset()
		case "tab", "l", "j":
			if n := len(s.selectable()); n > 0 {
				s.selected = (s.selected + 1) % n
			}
		case "shift+tab", "h", "k":
			if n := len(s.selectable()); n > 0 {
				s.selected = (s.selected - 1 + n) % n
			}
		case "p":
			if node, ok := s.selectedNode(); ok {
				s.mastery.TogglePinned(node.Name)
			}
		case "/":
			s.searching = true
			s.search = components.NewTextInput("skill name", 24)
			return s, s.search.Init()
		case "enter":
			return s, s.startQuiz()
		case "f":
			return s, s.fetchCmd()
		case "q":
			return s, func() tea.Msg { return nav.PopMsg{} }
		}
	}
	return s, nil
}

// jumpTo moves the selection to the first node matching the query.
func (s *Screen) jumpTo(query string) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return
	}
	for i, n := range s.selectable() {
		if strings.Contains(n.Name, q) || strings.Contains(strings.ToLower(n.Label), q) {
			s.selected = i
			return
		}
	}
}

// startQuiz opens the quiz screen for the selected skill. Already
// mastered skills have nothing to verify.
func (s *Screen) startQuiz() tea.Cmd {
	node, ok := s.selectedNode()
	if !ok || s.quizzes == nil {
		return nil
	}
	if s.mastery.IsMastered(node.Name) {
		return nil
	}
	qs := quizscreen.New(node.Name, s.quizzes, s.mastery)
	return func() tea.Msg {
		return nav.PushMsg{Screen: qs}
	}
}

func (s *Screen) Title() string {
	return "Skill Map"
}

// KeyHints returns the footer key hints.
func (s *Screen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Jump"},
		}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Pan"},
		{Key: "+/-", Description: "Zoom"},
		{Key: "Tab", Description: "Select"},
		{Key: "/", Description: "Search"},
		{Key: "Enter", Description: "Quiz"},
		{Key: "p", Description: "Pin"},
		{Key: "r", Description: "Reset view"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	panelWidth := 30
	canvasWidth := width - panelWidth - 1
	if canvasWidth < 20 {
		canvasWidth = width
		panelWidth = 0
	}

	canvas := s.renderCanvas(canvasWidth, height)
	if panelWidth == 0 {
		return canvas
	}

	panel := s.renderPanel(panelWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", panel)
}

// renderPanel shows the selected node's detail next to the canvas.
func (s *Screen) renderPanel(width, height int) string {
	var b strings.Builder

	if s.searching {
		b.WriteString(s.search.View())
		b.WriteString("\n\n")
	}
	if s.fetching {
		b.WriteString(theme.Hint.Render("fetching prerequisites…"))
		b.WriteString("\n\n")
	}

	node, ok := s.selectedNode()
	if !ok {
		b.WriteString(theme.Subtitle.Render("No skills to show"))
		return lipgloss.NewStyle().Width(width).Render(b.String())
	}

	status := s.graph.Status(node.Name, s.mastery.Mastered())
	b.WriteString(lipgloss.NewStyle().Foreground(statusColor(status)).Bold(true).Render(node.Label))
	if s.mastery.IsPinned(node.Name) {
		b.WriteString(theme.Hint.Render("  (pinned)"))
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s · %s", status.Label(), node.Category)))
	b.WriteString("\n\n")

	// Prerequisite edges point prerequisite -> dependent, so the selected
	// node's own prerequisites are the edges arriving at it.
	b.WriteString(theme.Body.Render("Needs:"))
	b.WriteString("\n")
	needs := 0
	for _, e := range s.graph.Edges {
		if e.Kind != skillgraph.EdgeNeeds || e.To != node.Name {
			continue
		}
		needs++
		prereq, _ := s.graph.Node(e.From)
		b.WriteString("  · " + theme.Body.Render(prereq.Label) + "\n")
	}
	if needs == 0 {
		b.WriteString(theme.Hint.Render("  nothing in this map") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(legend())

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func legend() string {
	entries := []struct {
		color color.Color
		label string
	}{
		{theme.StatusDetected, "detected"},
		{theme.StatusCore, "missing core"},
		{theme.StatusOptional, "missing optional"},
		{theme.StatusMastered, "mastered"},
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(lipgloss.NewStyle().Foreground(e.color).Render("●"))
		b.WriteString(" " + theme.Hint.Render(e.label) + "\n")
	}
	return b.String()
}

func statusColor(status skillgraph.Status) color.Color {
	switch status {
	case skillgraph.StatusDetected:
		return theme.StatusDetected
	case skillgraph.StatusMissingCore:
		return theme.StatusCore
	case skillgraph.StatusMissingOptional:
		return theme.StatusOptional
	case skillgraph.StatusMastered:
		return theme.StatusMastered
	default:
		return theme.TextDim
	}
}
