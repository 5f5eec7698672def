package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/router"
	"github.com/abhisek/worksheetz/internal/screens/placeholder"
	"github.com/abhisek/worksheetz/internal/screens/preview"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

type nopGenerator struct{}

func (nopGenerator) Generate(context.Context, worksheet.Request) problem.Batch {
	return problem.Batch{}
}

func selectItem(t *testing.T, h *HomeScreen, label string) tea.Msg {
	t.Helper()
	for i, item := range h.menu.Items {
		if item.Label == label {
			h.menu.Selected = i
			_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			if cmd == nil {
				return nil
			}
			return cmd()
		}
	}
	t.Fatalf("no menu item %q", label)
	return nil
}

func TestMenuListsEveryModule(t *testing.T) {
	h := New(Options{Generator: nopGenerator{}})
	mods := worksheet.Modules()
	require.Len(t, h.menu.Items, len(mods)+2)
	for i, info := range mods {
		assert.Equal(t, info.Title, h.menu.Items[i].Label)
	}
}

func TestAIDisabledWithoutProvider(t *testing.T) {
	h := New(Options{Generator: nopGenerator{}})
	info, _ := worksheet.Lookup(worksheet.ModuleAI)
	assert.Nil(t, selectItem(t, h, info.Title))

	h = New(Options{Generator: nopGenerator{}, AIEnabled: true})
	msg := selectItem(t, h, info.Title)
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &preview.PreviewScreen{}, push.Screen)
}

func TestModuleOpensPreview(t *testing.T) {
	h := New(Options{Generator: nopGenerator{}})
	info, _ := worksheet.Lookup(worksheet.ModuleFractions)
	push, ok := selectItem(t, h, info.Title).(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &preview.PreviewScreen{}, push.Screen)
}

func TestHistoryWithoutStore(t *testing.T) {
	h := New(Options{Generator: nopGenerator{}})
	push, ok := selectItem(t, h, "GEÇMİŞ").(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &placeholder.Screen{}, push.Screen)
}

func TestViewCompactTitle(t *testing.T) {
	h := New(Options{Generator: nopGenerator{}})
	assert.Contains(t, h.View(80, 20), arcadeTitleCompact)
}
