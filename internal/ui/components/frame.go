package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/ui/theme"
)

const (
	maxContentWidth = 72
	minContentWidth = 20
	// double border plus two columns of padding per side
	frameChrome = 6
)

// ContentWidth is the width screens lay their text out in, given the
// width of the surrounding frame.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-frameChrome, minContentWidth), maxContentWidth)
}

var cabinet = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(theme.Primary).
	Align(lipgloss.Center, lipgloss.Center)

// CabinetFrame centers content inside a double border filling width x height.
func CabinetFrame(content string, width, height int) string {
	return cabinet.Width(width - 2).Height(height - 2).Render(content)
}
