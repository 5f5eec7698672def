// Package layout draws the chrome around every screen: a header bar, the
// screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// CompactHeight is the body height below which screens drop
	// decorations.
	CompactHeight = 22
)

const appName = "Worksheetz"

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// BackHints are shown for screens that do not list their own.
var BackHints = []KeyHint{{Key: "Esc", Description: "Back"}, {Key: "Ctrl+C", Description: "Quit"}}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Frame describes the chrome of one rendered screen.
type Frame struct {
	Title string
	// Status sits in the header's right corner, e.g. the batch seed.
	Status string
	Hints  []KeyHint
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// Render draws the frame at width x height. body is called with the space
// left between header and footer.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	if IsTooSmall(width, height) {
		return tooSmall(width, height)
	}
	header := f.header(width)
	footer := f.footer(width)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		Render(body(width, bodyHeight))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (f Frame) header(width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + appName)
	title := lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title)
	status := lipgloss.NewStyle().Foreground(theme.Accent).Render(f.Status)

	// title is centered in the bar, the other two hug the edges
	inner := max(width-4, 0)
	nw, tw, sw := lipgloss.Width(name), lipgloss.Width(title), lipgloss.Width(status)
	before := max((inner-tw)/2-nw, 1)
	after := max(inner-nw-before-tw-sw, 1)

	line := name + strings.Repeat(" ", before) + title + strings.Repeat(" ", after) + status
	return bar.Width(width).Render(line)
}

func (f Frame) footer(width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(f.Hints))
	for i, h := range f.Hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar.Width(width).Render("  " + strings.Join(parts, "   "))
}

func tooSmall(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Pencere çok küçük.\n\nEn az %d x %d olmalı\n(şu an %d x %d)",
			MinWidth, MinHeight, width, height))
}

// Window returns the rows of lines visible from offset in a viewport of
// height rows. offset is clamped so the viewport never scrolls past the end
// and the clamped value is returned.
func Window(lines []string, offset, height int) ([]string, int) {
	if height <= 0 {
		return nil, 0
	}
	offset = min(offset, max(len(lines)-height, 0))
	offset = max(offset, 0)
	end := min(offset+height, len(lines))
	return lines[offset:end], offset
}
