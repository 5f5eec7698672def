package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/ui/theme"
)

// MenuItem is one row of a Menu. Disabled rows are drawn dimmed and
// cannot be selected.
type MenuItem struct {
	Label    string
	Note     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list navigated with the arrow keys or j/k.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// move selects the next enabled item in direction step, if there is one.
func (m *Menu) move(step int) {
	for i := m.Selected + step; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "home", "g":
		m = NewMenu(m.Items)
	case "enter":
		if m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; !item.Disabled && item.Action != nil {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

var (
	menuItem     = lipgloss.NewStyle().Foreground(theme.Text)
	menuDisabled = lipgloss.NewStyle().Foreground(theme.TextDim)
	menuCursor   = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
)

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch {
		case item.Disabled:
			b.WriteString(menuDisabled.Render("   " + item.Label))
		case i == m.Selected:
			b.WriteString(menuCursor.Render(" ▸ " + item.Label + " "))
		default:
			b.WriteString(menuItem.Render("   " + item.Label))
		}
		if item.Note != "" {
			b.WriteString("  " + theme.Hint.Render(item.Note))
		}
	}
	return b.String()
}
