// Package app owns the root Bubble Tea model: the screen stack, the
// shared frame, and global key handling.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/analysis"
	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/prereqmap"
	"github.com/adasgupta/skillbridge/internal/quiz"
	"github.com/adasgupta/skillbridge/internal/nav"
	"github.com/adasgupta/skillbridge/internal/screens/home"
	"github.com/adasgupta/skillbridge/internal/ui/layout"
)

// Options carries everything the TUI needs from the command layer.
type Options struct {
	Result  *analysis.Result
	Mastery *mastery.Service
	Fetcher *prereqmap.Client
	Quizzes quiz.Provider
}

// Model is the root Bubble Tea model.
type Model struct {
	screens *nav.Stack
	mastery *mastery.Service
	width   int
	height  int
}

func newModel(opts Options) Model {
	homeScreen := home.New(home.Deps{
		Result:  opts.Result,
		Mastery: opts.Mastery,
		Fetcher: opts.Fetcher,
		Quizzes: opts.Quizzes,
	})
	return Model{
		screens: nav.NewStack(homeScreen),
		mastery: opts.Mastery,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.screens.Depth() > 1 {
				return m, func() tea.Msg { return nav.PopMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.screens.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.screens.Top()
	title := active.Title()

	header := layout.RenderHeader(title,
		len(m.mastery.MasteredList()),
		m.mastery.DailyCommitmentHours(),
		m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.screens.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen first, then falls back to stack
// defaults.
func (m Model) footerHints(active nav.Screen) []layout.KeyHint {
	if provider, ok := active.(nav.KeyHinter); ok {
		return provider.KeyHints()
	}
	if m.screens.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
