package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/ui/theme"
)

// RatioBar shows how much of a total went well, e.g. problems generated
// without failure.
type RatioBar struct {
	Label string
	// LabelWidth pads labels so stacked bars line up.
	LabelWidth int
	Done       int
	Total      int
	Width      int
}

// Ratio returns Done/Total, or 0 when Total is zero.
func (p RatioBar) Ratio() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total)
}

// View renders the bar.
func (p RatioBar) View() string {
	label := p.Label
	if w := lipgloss.Width(label); w < p.LabelWidth {
		label += strings.Repeat(" ", p.LabelWidth-w)
	}
	result := lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	suffix := fmt.Sprintf("  %d/%d", p.Done, p.Total)

	barWidth := max(p.Width-lipgloss.Width(result)-len(suffix), 4)
	filled := min(max(int(float64(barWidth)*p.Ratio()), 0), barWidth)

	barColor := theme.Secondary
	if p.Done < p.Total {
		barColor = theme.Accent
	}
	result += lipgloss.NewStyle().Background(barColor).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	return result + lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
