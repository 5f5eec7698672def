// Package placeholder is the screen shown instead of a feature that is
// turned off, such as history without a database.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/ui/theme"
)

type Screen struct {
	title, message string
}

var _ screen.Screen = (*Screen)(nil)

func New(title, message string) *Screen {
	return &Screen{title: title, message: message}
}

func (*Screen) Init() tea.Cmd { return nil }

func (p *Screen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return p, nil }

func (p *Screen) Title() string { return p.title }

func (p *Screen) View(width, height int) string {
	heading := theme.Subtitle.Render("╌╌ " + p.title + " ╌╌")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, heading, "", theme.Body.Render(p.message)))
}
