package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/ui/theme"
)

// MultiChoice asks one quiz question. Before submission it is a cursor
// over the choices; after, it freezes and reveals which choice was right.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int

	cursor      int
	Submitted   bool
	ChosenIndex int
}

// NewMultiChoice creates an unanswered question.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update moves the cursor; enter locks the answer in. A submitted
// question ignores everything.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Submitted {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.Options)-1 {
			m.cursor++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.cursor
	}
	return m, nil
}

// IsCorrect reports whether the locked-in answer was the right one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}

// View renders the question and its lettered choices. After submission
// the correct choice goes green and a wrong pick goes red.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		line := fmt.Sprintf("  %c)  %s", 'A'+i, opt)
		if i == m.cursor && !m.Submitted {
			line = "▸" + line[1:]
		}
		b.WriteString(m.optionStyle(i).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	if !m.Submitted {
		if i == m.cursor {
			return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(theme.Text)
	}
	switch i {
	case m.CorrectIndex:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case m.ChosenIndex:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}
