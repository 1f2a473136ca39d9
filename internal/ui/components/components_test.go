package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenuCursorClampsAtEnds(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c"}})

	m, _ = m.Update(key("up"))
	if m.Cursor != 0 {
		t.Fatalf("cursor moved above first item: %d", m.Cursor)
	}

	for i := 0; i < 5; i++ {
		m, _ = m.Update(key("j"))
	}
	if m.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2 (clamped at last item)", m.Cursor)
	}
}

func TestMenuEnterFiresSelectedAction(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "first", Action: func() tea.Cmd { fired = "first"; return nil }},
		{Label: "second", Action: func() tea.Cmd { fired = "second"; return nil }},
	})

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter"))
	if fired != "second" {
		t.Fatalf("fired = %q, want second", fired)
	}
}

func TestMultiChoiceLocksAfterSubmit(t *testing.T) {
	c := NewMultiChoice("What does docker build do?", []string{
		"It builds an image",
		"It starts a container",
		"It pushes to a registry",
	}, 0)

	c, _ = c.Update(key("enter"))
	if !c.Submitted || c.ChosenIndex != 0 {
		t.Fatalf("Submitted=%v ChosenIndex=%d after enter", c.Submitted, c.ChosenIndex)
	}
	if !c.IsCorrect() {
		t.Fatal("choice 0 should be correct")
	}

	// Movement after submission is ignored.
	c, _ = c.Update(key("down"))
	c, _ = c.Update(key("enter"))
	if c.ChosenIndex != 0 {
		t.Fatalf("answer changed after submit: %d", c.ChosenIndex)
	}
}

func TestMultiChoiceWrongAnswer(t *testing.T) {
	c := NewMultiChoice("q", []string{"right", "wrong"}, 0)
	c, _ = c.Update(key("down"))
	c, _ = c.Update(key("enter"))
	if c.IsCorrect() {
		t.Fatal("choice 1 should be wrong")
	}
}

func TestProgressBarClampsFraction(t *testing.T) {
	for _, frac := range []float64{-0.5, 0, 0.5, 1, 3.2} {
		bar := NewProgressBar("Mastery", frac, true, 40)
		view := bar.View()
		if !strings.Contains(view, "%") {
			t.Fatalf("fraction %v: no percent readout in %q", frac, view)
		}
		if w := lipgloss.Width(view); w > 40 {
			t.Fatalf("fraction %v: width %d exceeds 40", frac, w)
		}
	}
}

func TestTextInputCapturesTypedText(t *testing.T) {
	in := NewTextInput("skill name", 24)
	for _, r := range "docker" {
		in, _ = in.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if got := in.Value(); got != "docker" {
		t.Fatalf("Value() = %q, want docker", got)
	}
}
