package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is the skill-search field: a thin wrapper over
// bubbles/textinput that pre-focuses the field and caps its length.
type TextInput struct {
	inner textinput.Model
}

// NewTextInput creates a focused input with a character limit.
func NewTextInput(placeholder string, limit int) TextInput {
	in := textinput.New()
	in.Placeholder = placeholder
	if limit > 0 {
		in.CharLimit = limit
	}
	in.Focus()
	return TextInput{inner: in}
}

// Init starts the cursor blink.
func (t TextInput) Init() tea.Cmd {
	return t.inner.Focus()
}

// Update forwards messages to the underlying input.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.inner, cmd = t.inner.Update(msg)
	return t, cmd
}

// View renders the input line.
func (t TextInput) View() string {
	return t.inner.View()
}

// Value returns the typed text.
func (t TextInput) Value() string {
	return t.inner.Value()
}
