// Package history lists recorded worksheet batches and replays them.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/router"
	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/screens/preview"
	"github.com/abhisek/worksheetz/internal/store"
	"github.com/abhisek/worksheetz/internal/ui/components"
	"github.com/abhisek/worksheetz/internal/ui/layout"
	"github.com/abhisek/worksheetz/internal/ui/theme"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// listLimit caps how many batches are loaded.
const listLimit = 100

// Reader is the part of the event log the screen reads.
type Reader interface {
	QueryGenerations(ctx context.Context, opts store.QueryOpts) ([]store.GenerationEvent, error)
	GenerationsByModule(ctx context.Context) ([]store.ModuleUsage, error)
}

type historyLoadedMsg struct {
	Events  []store.GenerationEvent
	Modules []store.ModuleUsage
	Err     error
}

// HistoryScreen displays past batches with per-module totals.
type HistoryScreen struct {
	events   Reader
	gen      preview.Generator
	list     []store.GenerationEvent
	modules  []store.ModuleUsage
	selected int
	offset   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. gen is used to replay a batch.
func New(events Reader, gen preview.Generator) *HistoryScreen {
	return &HistoryScreen{events: events, gen: gen}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		events, err := s.events.QueryGenerations(ctx, store.QueryOpts{Limit: listLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		modules, err := s.events.GenerationsByModule(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Events: events, Modules: modules}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Replay"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.list = msg.Events
			s.modules = msg.Modules
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.list)-1 {
				s.selected++
			}
		case "enter":
			return s, s.replay()
		}
	}
	return s, nil
}

// replay opens the selected batch with its recorded settings and seed.
func (s *HistoryScreen) replay() tea.Cmd {
	if s.selected >= len(s.list) {
		return nil
	}
	e := s.list[s.selected]
	req, err := worksheet.DecodeRequest(worksheet.ModuleID(e.Module), []byte(e.Settings))
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	req.Seed = e.Seed
	req.Count = e.Count
	p := preview.New(s.gen, req)
	return func() tea.Msg { return router.PushScreenMsg{Screen: p} }
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.list) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Henüz çalışma kâğıdı üretilmedi.")
	}

	cw := components.ContentWidth(width)
	var top []string
	if height >= layout.CompactHeight {
		top = append(s.moduleBars(cw), "")
	}

	rows := make([]string, 0, len(s.list))
	for i, e := range s.list {
		rows = append(rows, s.row(i, e))
	}

	// keep the selection in view
	listHeight := max(height-len(top)-2, 1)
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+listHeight {
		s.offset = s.selected - listHeight + 1
	}
	visible, offset := layout.Window(rows, s.offset, listHeight)
	s.offset = offset

	body := strings.Join(append(top, visible...), "\n")
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render("\n" + lipgloss.NewStyle().Width(cw).Render(body))
}

func (s *HistoryScreen) moduleBars(cw int) []string {
	labelWidth := 0
	for _, m := range s.modules {
		labelWidth = max(labelWidth, lipgloss.Width(moduleTitle(m.Module)))
	}
	bars := []string{theme.Subtitle.Render("Modüller")}
	for _, m := range s.modules {
		bars = append(bars, components.RatioBar{
			Label:      moduleTitle(m.Module),
			LabelWidth: labelWidth,
			Done:       m.Problems - m.Failed,
			Total:      m.Problems,
			Width:      cw,
		}.View())
	}
	return bars
}

func (s *HistoryScreen) row(i int, e store.GenerationEvent) string {
	prefix := "  "
	if i == s.selected {
		prefix = "> "
	}
	title := e.Title
	if title == "" {
		title = moduleTitle(e.Module)
	}
	line := fmt.Sprintf("%s%s  %-24s %3d soru  seed %d",
		prefix, e.Timestamp.Local().Format("02.01.2006 15:04"), title, e.Count, e.Seed)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case i == s.selected:
		style = style.Foreground(theme.Primary).Bold(true)
	case e.Failed > 0:
		style = theme.Failure
	}
	if e.Failed > 0 {
		line += fmt.Sprintf("  (%d hata)", e.Failed)
	}
	return style.Render(line)
}

func moduleTitle(id string) string {
	if info, ok := worksheet.Lookup(worksheet.ModuleID(id)); ok {
		return info.Title
	}
	return id
}
