package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/ui/components"
	"github.com/abhisek/worksheetz/internal/ui/theme"
)

const arcadeTitleFull = `█   █  ███  ████  █   █  ████ █   █ █████ █████ █████ █████
█   █ █   █ █   █ █  █  █     █   █ █     █       █      █
█ █ █ █   █ ████  ███    ███  █████ ████  ████    █     █
██ ██ █   █ █  █  █  █      █ █   █ █     █       █    █
█   █  ███  █   █ █   █ ████  █   █ █████ █████   █   █████`

const arcadeTitleCompact = "W · O · R · K · S · H · E · E · T · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact || cw < lipgloss.Width(arcadeTitleFull) {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderMenu renders the module list, a divider, then the remaining items.
func renderMenu(m components.Menu, moduleRows, cw int) string {
	lines := strings.Split(m.View(), "\n")
	if moduleRows > 0 && moduleRows < len(lines) {
		divider := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(strings.Repeat("─", 24))
		lines = append(lines[:moduleRows:moduleRows], append([]string{divider}, lines[moduleRows:]...)...)
	}
	block := lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
