// Package home is the entry screen: a menu over the main surfaces plus a
// one-line snapshot of the loaded analysis.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/analysis"
	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/nav"
	"github.com/adasgupta/skillbridge/internal/prereqmap"
	"github.com/adasgupta/skillbridge/internal/quiz"
	planscreen "github.com/adasgupta/skillbridge/internal/screens/plan"
	"github.com/adasgupta/skillbridge/internal/screens/skillmap"
	"github.com/adasgupta/skillbridge/internal/screens/stats"
	"github.com/adasgupta/skillbridge/internal/ui/components"
	"github.com/adasgupta/skillbridge/internal/ui/theme"
)

// Deps carries the collaborators the home screen hands to sub-screens.
type Deps struct {
	Result  *analysis.Result
	Mastery *mastery.Service
	Fetcher *prereqmap.Client
	Quizzes quiz.Provider
}

// Screen is the home screen.
type Screen struct {
	deps Deps
	menu components.Menu
}

var _ nav.Screen = (*Screen)(nil)

// New creates the home screen.
func New(deps Deps) *Screen {
	s := &Screen{deps: deps}

	items := []components.MenuItem{
		{Label: "SKILL MAP", Action: func() tea.Cmd {
			return push(skillmap.New(deps.Result, deps.Mastery, deps.Fetcher, deps.Quizzes))
		}},
		{Label: "STUDY PLAN", Action: func() tea.Cmd {
			return push(planscreen.New(deps.Result, deps.Mastery, deps.Quizzes))
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return push(stats.New(deps.Result, deps.Mastery, prereqmap.Builtin()))
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	s.menu = components.NewMenu(items)
	return s
}

func push(next nav.Screen) tea.Cmd {
	return func() tea.Msg {
		return nav.PushMsg{Screen: next}
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("SkillBridge"))
	sections = append(sections, theme.Subtitle.Render("close the gap between your resume and the role"))

	r := s.deps.Result
	snapshot := fmt.Sprintf("%s · %d detected · %d core gaps · %d optional gaps",
		r.Role, len(r.Detected), len(r.MissingCore), len(r.MissingOptional))
	sections = append(sections, theme.Hint.Render(snapshot))

	sections = append(sections, "")
	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *Screen) Title() string {
	return "Home"
}
