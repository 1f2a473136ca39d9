package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/ui/theme"
)

// MenuItem pairs a label with the command to run when it is chosen.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is the vertical chooser on the home screen.
type Menu struct {
	Items  []MenuItem
	Cursor int
}

// NewMenu creates a menu with the cursor on the first item.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves the cursor and fires the selected item's action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "enter":
		if action := m.Items[m.Cursor].Action; action != nil {
			return m, action()
		}
	}
	return m, nil
}

// View renders one line per item with the cursor marked.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		if i == m.Cursor {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + item.Label))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
