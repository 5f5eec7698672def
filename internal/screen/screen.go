// Package screen defines what the router needs from a TUI screen and the
// optional extras the app frame asks for.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/worksheetz/internal/ui/layout"
)

// Screen is one page of the browse UI. Update may return a different
// Screen to replace itself on the stack.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	// View draws the body only; the header and footer belong to the app.
	View(width, height int) string
	Title() string
}

// KeyHintProvider screens list their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider screens fill the right corner of the header.
type StatusProvider interface {
	Status() string
}

// InputCapturer screens own Esc while CapturingInput is true.
type InputCapturer interface {
	CapturingInput() bool
}
