// Package nav holds the screen contract and the screen stack. Screens
// never reference each other's concrete types to navigate: they emit
// PushMsg and PopMsg through the Bubble Tea update loop and the stack
// rewires itself.
package nav

import (
	tea "charm.land/bubbletea/v2"

	"github.com/adasgupta/skillbridge/internal/ui/layout"
)

// Screen is one full-content surface between the app header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHinter lets a screen replace the default footer hints.
type KeyHinter interface {
	KeyHints() []layout.KeyHint
}

// PushMsg opens a screen on top of the current one.
type PushMsg struct {
	Screen Screen
}

// PopMsg closes the current screen, revealing the one beneath it.
type PopMsg struct{}

// Stack owns the screen hierarchy. The root screen is permanent: popping
// with only the root left is a no-op, so Top never runs dry.
type Stack struct {
	screens []Screen
}

// NewStack creates a stack with root at the bottom.
func NewStack(root Screen) *Stack {
	return &Stack{screens: []Screen{root}}
}

// Top returns the screen currently receiving input.
func (st *Stack) Top() Screen {
	return st.screens[len(st.screens)-1]
}

// Depth returns how many screens are stacked, root included.
func (st *Stack) Depth() int {
	return len(st.screens)
}

// Update routes navigation messages to the stack itself and everything
// else to the top screen.
func (st *Stack) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case PushMsg:
		st.screens = append(st.screens, m.Screen)
		return m.Screen.Init()
	case PopMsg:
		if len(st.screens) > 1 {
			st.screens = st.screens[:len(st.screens)-1]
		}
		return nil
	}

	next, cmd := st.Top().Update(msg)
	st.screens[len(st.screens)-1] = next
	return cmd
}

// View renders the top screen at the given content size.
func (st *Stack) View(width, height int) string {
	return st.Top().View(width, height)
}
