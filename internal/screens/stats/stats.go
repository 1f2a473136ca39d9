// Package stats summarizes the learner's progress: mastery counts, plan
// totals, category breakdown, and which skills the curriculum now
// considers unlocked.
package stats

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/analysis"
	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/nav"
	"github.com/adasgupta/skillbridge/internal/prereqmap"
	"github.com/adasgupta/skillbridge/internal/scheduler"
	"github.com/adasgupta/skillbridge/internal/skillgraph"
	"github.com/adasgupta/skillbridge/internal/ui/components"
	"github.com/adasgupta/skillbridge/internal/ui/theme"
)

// Screen is the progress summary screen.
type Screen struct {
	result  *analysis.Result
	mastery *mastery.Service
	prereqs prereqmap.Map
}

var _ nav.Screen = (*Screen)(nil)

// New creates the stats screen. The prerequisite map is whatever the
// caller has on hand; the built-in curriculum is a fine default.
func New(result *analysis.Result, m *mastery.Service, prereqs prereqmap.Map) *Screen {
	return &Screen{result: result, mastery: m, prereqs: prereqs}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return s, func() tea.Msg { return nav.PopMsg{} }
	}
	return s, nil
}

func (s *Screen) Title() string {
	return "Progress"
}

func (s *Screen) View(width, height int) string {
	tasks := scheduler.BuildPlan(s.result.MissingCore, s.result.MissingOptional)
	graph := skillgraph.Build(s.result.Detected, s.result.MissingCore, s.result.MissingOptional, s.prereqs)

	masteredTasks := 0
	for _, t := range tasks {
		if s.mastery.IsMastered(t.Skill) {
			masteredTasks++
		}
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Progress") + "\n\n")

	if len(tasks) > 0 {
		bar := components.NewProgressBar(
			"Mastery",
			float64(masteredTasks)/float64(len(tasks)),
			true,
			min(width-10, 50),
		)
		b.WriteString(bar.View() + "\n\n")
	}

	b.WriteString(theme.Body.Render(fmt.Sprintf("Role: %s", s.result.Role)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Skills mastered: %d", len(s.mastery.MasteredList()))) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Plan: %d tasks, %d min at %dh/day",
		len(tasks), scheduler.TotalMinutes(tasks), s.mastery.DailyCommitmentHours())) + "\n\n")

	b.WriteString(theme.Subtitle.Render("Map by category") + "\n")
	counts := graph.CategoryCounts()
	categories := make([]string, 0, len(counts))
	for cat := range counts {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %-14s %d", cat, counts[cat])) + "\n")
	}

	unlocked := prereqmap.Unlocked(s.prereqs, s.mastery.Mastered())
	b.WriteString("\n" + theme.Subtitle.Render(fmt.Sprintf("Unlocked skills (%d)", len(unlocked))) + "\n")
	shown := unlocked
	if len(shown) > 8 {
		shown = shown[:8]
	}
	for _, name := range shown {
		b.WriteString(theme.Hint.Render("  · "+name) + "\n")
	}
	if len(unlocked) > len(shown) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  … and %d more", len(unlocked)-len(shown))) + "\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
