package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/worksheetz/internal/router"
	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/screens/history"
	"github.com/abhisek/worksheetz/internal/screens/home"
	"github.com/abhisek/worksheetz/internal/screens/preview"
	"github.com/abhisek/worksheetz/internal/ui/layout"
)

// Options holds the dependencies of the browse UI.
type Options struct {
	Generator preview.Generator
	// History is nil when the event store is disabled.
	History   history.Reader
	AIEnabled bool
}

// AppModel is the root Bubble Tea model. It owns the window size and the
// screen stack and handles the global keys.
type AppModel struct {
	router        *router.Router
	width, height int
}

func newAppModel(opts Options) AppModel {
	root := home.New(home.Options{
		Generator: opts.Generator,
		History:   opts.History,
		AIEnabled: opts.AIEnabled,
	})
	return AppModel{router: router.New(root)}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.typing() {
				m.router.Pop()
				return m, nil
			}
		}
	}
	return m, m.router.Update(msg)
}

// typing reports whether the active screen wants Esc for its text field.
func (m AppModel) typing() bool {
	ic, ok := m.router.Active().(screen.InputCapturer)
	return ok && ic.CapturingInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}

	active := m.router.Active()
	frame := layout.Frame{Title: active.Title()}
	if sp, ok := active.(screen.StatusProvider); ok {
		frame.Status = sp.Status()
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		frame.Hints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		frame.Hints = layout.BackHints
	}

	v.SetContent(frame.Render(m.width, m.height, m.router.View))
	return v
}

// Run starts the browse UI and blocks until the user quits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newAppModel(opts)).Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
