package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/worksheetz/internal/router"
	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/screens/history"
	"github.com/abhisek/worksheetz/internal/screens/placeholder"
	"github.com/abhisek/worksheetz/internal/screens/preview"
	"github.com/abhisek/worksheetz/internal/ui/components"
	"github.com/abhisek/worksheetz/internal/ui/layout"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// Options wires the home screen to the rest of the app.
type Options struct {
	Generator preview.Generator
	// History is nil when the event store is disabled.
	History   history.Reader
	AIEnabled bool
}

// HomeScreen is the module picker.
type HomeScreen struct {
	menu       components.Menu
	moduleRows int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	var items []components.MenuItem
	for _, info := range worksheet.Modules() {
		item := components.MenuItem{Label: info.Title}
		if info.AI && !opts.AIEnabled {
			item.Disabled = true
			item.Note = "LLM anahtarı gerekli"
		} else {
			req := worksheet.Request{Module: info.ID}
			item.Action = push(func() screen.Screen { return preview.New(opts.Generator, req) })
		}
		items = append(items, item)
	}
	moduleRows := len(items)

	items = append(items,
		components.MenuItem{Label: "GEÇMİŞ", Action: push(func() screen.Screen {
			if opts.History == nil {
				return placeholder.New("History", "Geçmiş kaydı kapalı (db.disabled).")
			}
			return history.New(opts.History, opts.Generator)
		})},
		components.MenuItem{Label: "ÇIKIŞ", Action: func() tea.Cmd { return tea.Quit }},
	)

	return &HomeScreen{
		menu:       components.NewMenu(items),
		moduleRows: moduleRows,
	}
}

func push(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		s := build()
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < layout.CompactHeight+len(h.menu.Items)/2 || width < 100
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderMenu(h.menu, h.moduleRows, cw),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
