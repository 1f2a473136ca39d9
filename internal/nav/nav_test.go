package nav

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type fakeScreen struct {
	name  string
	inits int
	msgs  []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	f.msgs = append(f.msgs, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestPushMakesScreenTopAndInitsIt(t *testing.T) {
	root := &fakeScreen{name: "map"}
	st := NewStack(root)

	detail := &fakeScreen{name: "quiz"}
	st.Update(PushMsg{Screen: detail})

	if st.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", st.Depth())
	}
	if st.Top() != Screen(detail) {
		t.Error("pushed screen should be on top")
	}
	if detail.inits != 1 {
		t.Errorf("pushed screen Init ran %d times, want 1", detail.inits)
	}
}

func TestPopRevealsScreenBeneath(t *testing.T) {
	root := &fakeScreen{name: "map"}
	st := NewStack(root)
	st.Update(PushMsg{Screen: &fakeScreen{name: "quiz"}})

	st.Update(PopMsg{})

	if st.Depth() != 1 || st.Top().Title() != "map" {
		t.Errorf("pop should reveal the root, got depth %d top %q", st.Depth(), st.Top().Title())
	}
}

func TestPopAtRootIsNoop(t *testing.T) {
	st := NewStack(&fakeScreen{name: "map"})
	st.Update(PopMsg{})
	if st.Depth() != 1 {
		t.Errorf("popping the root should be a no-op, depth = %d", st.Depth())
	}
}

func TestNonNavigationMessagesReachOnlyTheTop(t *testing.T) {
	root := &fakeScreen{name: "map"}
	top := &fakeScreen{name: "quiz"}
	st := NewStack(root)
	st.Update(PushMsg{Screen: top})

	st.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if len(top.msgs) != 1 {
		t.Errorf("top screen saw %d messages, want 1", len(top.msgs))
	}
	if len(root.msgs) != 0 {
		t.Errorf("covered screen must not receive input, saw %d messages", len(root.msgs))
	}
}

func TestViewRendersTop(t *testing.T) {
	st := NewStack(&fakeScreen{name: "map"})
	st.Update(PushMsg{Screen: &fakeScreen{name: "quiz"}})
	if got := st.View(80, 24); got != "quiz" {
		t.Errorf("View = %q, want the top screen's content", got)
	}
}
