package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/worksheetz/internal/screen"
)

type fakeScreen struct {
	name    string
	started int
	seen    []tea.Msg
	next    screen.Screen
}

func (s *fakeScreen) Init() tea.Cmd {
	s.started++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	if s.next != nil {
		return s.next, nil
	}
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.name }
func (s *fakeScreen) Title() string        { return s.name }

func titles(r *Router) []string {
	out := make([]string, 0, r.Depth())
	for _, s := range r.stack {
		out = append(out, s.Title())
	}
	return out
}

func TestRouter_Navigation(t *testing.T) {
	home := &fakeScreen{name: "home"}
	history := &fakeScreen{name: "history"}
	preview := &fakeScreen{name: "preview"}
	r := New(home)

	r.Update(PushScreenMsg{Screen: history})
	r.Update(PushScreenMsg{Screen: preview})
	assert.Equal(t, []string{"home", "history", "preview"}, titles(r))
	assert.Equal(t, 1, preview.started)
	assert.Zero(t, home.started, "root Init is the app's job")

	r.Update(PopScreenMsg{})
	assert.Equal(t, "history", r.View(80, 24))

	r.Update(PushScreenMsg{Screen: preview})
	r.Update(PopToRootMsg{})
	assert.Equal(t, []string{"home"}, titles(r))
}

func TestRouter_RootStays(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	assert.False(t, r.Pop())
	assert.False(t, r.PopToRoot())
	assert.Equal(t, 1, r.Depth())
}

func TestRouter_ForwardsToActive(t *testing.T) {
	home := &fakeScreen{name: "home"}
	after := &fakeScreen{name: "settings"}
	top := &fakeScreen{name: "form", next: after}
	r := New(home)
	r.Push(top)

	key := tea.KeyPressMsg{Code: 'x', Text: "x"}
	r.Update(key)

	assert.Equal(t, []tea.Msg{key}, top.seen)
	assert.Empty(t, home.seen)
	assert.Same(t, after, r.Active())
}
