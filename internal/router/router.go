// Package router keeps the TUI's screen stack. Screens navigate by
// returning one of the *Msg commands below; the app feeds every message
// through Router.Update.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/worksheetz/internal/screen"
)

type (
	// PushScreenMsg opens Screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg goes back one screen.
	PopScreenMsg struct{}

	// PopToRootMsg goes back to the home screen.
	PopToRootMsg struct{}
)

// Router holds the screen stack. The root screen is never popped.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop reports whether there was a screen to leave.
func (r *Router) Pop() bool {
	return r.truncate(len(r.stack) - 1)
}

func (r *Router) PopToRoot() bool {
	return r.truncate(1)
}

func (r *Router) truncate(n int) bool {
	n = max(n, 1)
	if n >= len(r.stack) {
		return false
	}
	clear(r.stack[n:])
	r.stack = r.stack[:n]
	return true
}

func (r *Router) Active() screen.Screen { return r.stack[len(r.stack)-1] }

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and hands everything else to the
// active screen, which may replace itself.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case PopToRootMsg:
		r.PopToRoot()
		return nil
	}
	next, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
