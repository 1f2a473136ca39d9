// Package quizscreen runs one mastery quiz attempt: generate questions,
// walk the learner through them, grade, and hand the outcome to the
// verification bridge. A perfect score is the only path to mastery here.
package quizscreen

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/nav"
	"github.com/adasgupta/skillbridge/internal/quiz"
	"github.com/adasgupta/skillbridge/internal/ui/components"
	"github.com/adasgupta/skillbridge/internal/ui/layout"
	"github.com/adasgupta/skillbridge/internal/ui/theme"
	"github.com/adasgupta/skillbridge/internal/verify"
)

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseAsking
	phaseDone
)

// ResultMsg is emitted after the screen pops so the screen below can
// clear its pending affordance and re-read the mastery set.
type ResultMsg struct {
	Skill   string
	Outcome verify.Outcome
	Granted bool
}

type questionsMsg struct {
	questions []quiz.Question
	err       error
}

// Screen is the quiz screen for a single skill.
type Screen struct {
	skill    string
	provider quiz.Provider
	bridge   *verify.Bridge

	phase     phase
	err       error
	questions []quiz.Question
	answers   []int
	current   int
	choice    components.MultiChoice

	outcome verify.Outcome
	granted bool
}

var _ nav.Screen = (*Screen)(nil)

// New creates a quiz screen. Question generation starts in Init.
func New(skill string, provider quiz.Provider, m *mastery.Service) *Screen {
	return &Screen{
		skill:    skill,
		provider: provider,
		bridge:   verify.NewBridge(m),
		phase:    phaseLoading,
	}
}

func (s *Screen) Init() tea.Cmd {
	provider := s.provider
	skill := s.skill
	return func() tea.Msg {
		qs, err := provider.GenerateQuiz(context.Background(), skill, quiz.DefaultQuestionCount)
		return questionsMsg{questions: qs, err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		if msg.err != nil {
			s.phase = phaseFailed
			s.err = msg.err
			return s, nil
		}
		s.phase = phaseAsking
		s.questions = msg.questions
		s.answers = nil
		s.current = 0
		s.choice = s.newChoice()
		return s, nil

	case tea.KeyMsg:
		switch s.phase {
		case phaseFailed:
			return s, s.popCmd(nil)
		case phaseAsking:
			return s.updateAsking(msg)
		case phaseDone:
			switch msg.String() {
			case "enter", "q", "esc":
				outcome := s.outcome
				granted := s.granted
				skill := s.skill
				return s, s.popCmd(func() tea.Msg {
					return ResultMsg{Skill: skill, Outcome: outcome, Granted: granted}
				})
			}
		}
	}
	return s, nil
}

func (s *Screen) updateAsking(msg tea.KeyMsg) (nav.Screen, tea.Cmd) {
	wasSubmitted := s.choice.Submitted
	s.choice, _ = s.choice.Update(msg)

	// Advance on the keypress after the answer reveal.
	if wasSubmitted && msg.String() == "enter" {
		s.answers = append(s.answers, s.choice.ChosenIndex)
		s.current++
		if s.current >= len(s.questions) {
			s.finish()
			return s, nil
		}
		s.choice = s.newChoice()
	}
	return s, nil
}

func (s *Screen) newChoice() components.MultiChoice {
	q := s.questions[s.current]
	return components.NewMultiChoice(q.Text, q.Choices, q.Answer)
}

// finish grades the attempt and applies the outcome through the bridge.
func (s *Screen) finish() {
	s.outcome = quiz.Grade(s.skill, s.questions, s.answers)
	s.granted = s.bridge.ApplyOutcome(s.outcome)
	s.phase = phaseDone
}

func (s *Screen) popCmd(after tea.Cmd) tea.Cmd {
	pop := func() tea.Msg { return nav.PopMsg{} }
	if after == nil {
		return pop
	}
	return tea.Sequence(pop, after)
}

func (s *Screen) Title() string {
	return fmt.Sprintf("Quiz: %s", s.skill)
}

// KeyHints returns the footer key hints.
func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *Screen) View(width, height int) string {
	var body string
	switch s.phase {
	case phaseLoading:
		body = theme.Hint.Render(fmt.Sprintf("Generating %s quiz…", s.skill))
	case phaseFailed:
		body = theme.Incorrect.Render("Quiz unavailable") + "\n\n" +
			theme.Hint.Render(fmt.Sprintf("%v", s.err)) + "\n\n" +
			theme.Hint.Render("Press any key to go back")
	case phaseAsking:
		body = s.viewAsking(width)
	case phaseDone:
		body = s.viewDone()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *Screen) viewAsking(width int) string {
	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", s.current+1, len(s.questions)),
		float64(s.current)/float64(len(s.questions)),
		false,
		min(width-8, 50),
	)
	b.WriteString(progress.View())
	b.WriteString("\n\n")
	b.WriteString(s.choice.View())

	if s.choice.Submitted {
		b.WriteString("\n")
		q := s.questions[s.current]
		if s.choice.IsCorrect() {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
		}
		if q.Explanation != "" {
			b.WriteString("\n" + theme.Hint.Render(q.Explanation))
		}
		b.WriteString("\n\n" + theme.Hint.Render("Enter to continue"))
	}

	return b.String()
}

func (s *Screen) viewDone() string {
	var b strings.Builder
	if s.granted {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Perfect! %s is now mastered.", s.skill)))
	} else {
		b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %d/%d", s.outcome.Correct, s.outcome.Total)))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("A perfect score is needed to master a skill. Review and retry."))
	}
	b.WriteString("\n\n" + theme.Hint.Render("Enter to go back"))
	return b.String()
}
