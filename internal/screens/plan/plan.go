// Package plan shows the study plan as day buckets and tracks task
// completion. Buckets are recomputed from the analysis result and the
// persisted daily commitment on every state change, never stored.
package plan

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/adasgupta/skillbridge/internal/analysis"
	"github.com/adasgupta/skillbridge/internal/gate"
	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/nav"
	"github.com/adasgupta/skillbridge/internal/quiz"
	"github.com/adasgupta/skillbridge/internal/scheduler"
	"github.com/adasgupta/skillbridge/internal/screens/quizscreen"
	"github.com/adasgupta/skillbridge/internal/ui/layout"
	"github.com/adasgupta/skillbridge/internal/ui/theme"
)

// Screen is the study plan screen.
type Screen struct {
	result  *analysis.Result
	mastery *mastery.Service
	quizzes quiz.Provider

	tasks   []scheduler.Task
	buckets []scheduler.DayBucket
	cursor  int

	// pending is the skill whose quiz is currently open; its tasks render
	// with the in-flight affordance but gate as open.
	pending string

	scrollOffset int
}

var _ nav.Screen = (*Screen)(nil)

// New creates the plan screen.
func New(result *analysis.Result, m *mastery.Service, quizzes quiz.Provider) *Screen {
	s := &Screen{
		result:  result,
		mastery: m,
		quizzes: quizzes,
	}
	s.recompute()
	return s
}

// recompute rebuilds tasks and buckets from current state.
func (s *Screen) recompute() {
	s.tasks = scheduler.BuildPlan(s.result.MissingCore, s.result.MissingOptional)
	s.buckets = scheduler.Distribute(s.tasks, s.mastery.DailyMinutes())
	if s.cursor >= len(s.tasks) {
		s.cursor = len(s.tasks) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizscreen.ResultMsg:
		s.pending = ""
		s.recompute()
		return s, nil

	case tea.KeyMsg:
		// A key reaching this screen means any quiz above it has closed;
		// an abandoned attempt never sends a result.
		if s.pending != "" {
			s.pending = ""
			s.recompute()
		}

		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.tasks)-1 {
				s.cursor++
			}
		case "space":
			if t, ok := s.currentTask(); ok {
				s.mastery.ToggleTaskCompleted(t.ID)
			}
		case "+", "=":
			s.mastery.SetDailyCommitmentHours(s.mastery.DailyCommitmentHours() + 1)
			s.recompute()
		case "-", "_":
			s.mastery.SetDailyCommitmentHours(s.mastery.DailyCommitmentHours() - 1)
			s.recompute()
		case "enter":
			return s, s.startQuiz()
		case "q":
			return s, func() tea.Msg { return nav.PopMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) currentTask() (scheduler.Task, bool) {
	if len(s.tasks) == 0 {
		return scheduler.Task{}, false
	}
	return s.tasks[s.cursor], true
}

// startQuiz opens a quiz for the selected task's skill. Locked tasks can
// still be quizzed — the gate shapes presentation, not access.
func (s *Screen) startQuiz() tea.Cmd {
	t, ok := s.currentTask()
	if !ok || s.quizzes == nil || s.mastery.IsMastered(t.Skill) {
		return nil
	}
	s.pending = t.Skill
	qs := quizscreen.New(t.Skill, s.quizzes, s.mastery)
	return func() tea.Msg {
		return nav.PushMsg{Screen: qs}
	}
}

func (s *Screen) Title() string {
	return "Study Plan"
}

// KeyHints returns the footer key hints.
func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Done"},
		{Key: "Enter", Description: "Quiz"},
		{Key: "+/-", Description: "Hours/day"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) View(width, height int) string {
	if len(s.buckets) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Subtitle.Render("Nothing to plan — no missing skills."))
	}

	var lines []string
	lines = append(lines, theme.Hint.Render(fmt.Sprintf(
		"  %d tasks · %d min total · %dh/day budget",
		len(s.tasks), scheduler.TotalMinutes(s.tasks), s.mastery.DailyCommitmentHours())))
	lines = append(lines, "")

	states := gate.Evaluate(s.tasks, s.mastery.Mastered())
	taskIdx := 0
	for _, bucket := range s.buckets {
		lines = append(lines, s.renderDayHeader(bucket, width))
		for _, t := range bucket.Tasks {
			lines = append(lines, s.renderTaskRow(t, states[t.ID], taskIdx == s.cursor, width))
			taskIdx++
		}
	}

	// Scroll so the cursor's row stays visible.
	cursorLine := s.cursorLine()
	if cursorLine < s.scrollOffset {
		s.scrollOffset = cursorLine
	}
	if cursorLine >= s.scrollOffset+height {
		s.scrollOffset = cursorLine - height + 1
	}
	if s.scrollOffset > 0 && s.scrollOffset < len(lines) {
		lines = lines[s.scrollOffset:]
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// cursorLine maps the task cursor to its line in the rendered list.
func (s *Screen) cursorLine() int {
	line := 2 // summary + blank
	taskIdx := 0
	for _, bucket := range s.buckets {
		line++ // day header
		for range bucket.Tasks {
			if taskIdx == s.cursor {
				return line
			}
			line++
			taskIdx++
		}
	}
	return line
}

func (s *Screen) renderDayHeader(bucket scheduler.DayBucket, width int) string {
	label := fmt.Sprintf("DAY %d — %d min", bucket.Day, bucket.TotalMinutes)
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(0, 0, 0, 2).
		Render(label)
}

func (s *Screen) renderTaskRow(t scheduler.Task, state gate.State, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	check := "[ ]"
	if s.mastery.IsTaskCompleted(t.ID) {
		check = "[x]"
	}

	var marker string
	var style lipgloss.Style
	switch {
	case t.Skill == s.pending:
		marker = "…"
		style = lipgloss.NewStyle().Foreground(theme.Accent)
	case state == gate.StateMastered:
		marker = "✔"
		style = lipgloss.NewStyle().Foreground(theme.StatusMastered)
	case state == gate.StateLocked:
		marker = "🔒"
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	default:
		marker = "○"
		style = lipgloss.NewStyle().Foreground(theme.Text)
	}
	if selected {
		style = style.Bold(true)
	}

	tier := lipgloss.NewStyle().Foreground(tierColor(t.Tier)).Render(fmt.Sprintf("%-8s", t.Tier.Label()))
	row := fmt.Sprintf("  %s%s %s %s %s  %d min", cursor, check, marker, tier, t.Title, t.Minutes)
	if width > 1 && lipgloss.Width(row) > width {
		// Cell-measured, escape-aware: byte slicing would split the
		// marker glyphs and miscount styled segments.
		row = ansi.Truncate(row, width, "…")
	}
	return style.Render(row)
}

func tierColor(tier scheduler.Tier) color.Color {
	switch tier {
	case scheduler.TierCritical:
		return theme.StatusCore
	case scheduler.TierHigh:
		return theme.Accent
	default:
		return theme.StatusOptional
	}
}
