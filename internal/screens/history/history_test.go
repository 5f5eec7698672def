package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/router"
	"github.com/abhisek/worksheetz/internal/screens/preview"
	"github.com/abhisek/worksheetz/internal/store"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

type fakeReader struct {
	events  []store.GenerationEvent
	modules []store.ModuleUsage
	err     error
}

func (f fakeReader) QueryGenerations(context.Context, store.QueryOpts) ([]store.GenerationEvent, error) {
	return f.events, f.err
}

func (f fakeReader) GenerationsByModule(context.Context) ([]store.ModuleUsage, error) {
	return f.modules, f.err
}

type recordingGenerator struct {
	got worksheet.Request
}

func (g *recordingGenerator) Generate(_ context.Context, req worksheet.Request) problem.Batch {
	g.got = req
	return problem.Batch{Seed: req.Seed}
}

func event(seq int64, module, settings string, seed uint64, count int) store.GenerationEvent {
	return store.GenerationEvent{
		Sequence:  seq,
		Timestamp: time.Now(),
		GenerationEventData: store.GenerationEventData{
			BatchID: "b", Module: module, Seed: seed, Count: count, Settings: settings,
		},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	s.Update(s.Init()())
	require.True(t, s.loaded)
}

func TestEmptyHistory(t *testing.T) {
	s := New(fakeReader{}, &recordingGenerator{})
	load(t, s)
	assert.Contains(t, s.View(100, 30), "Henüz")
}

func TestLoadError(t *testing.T) {
	s := New(fakeReader{err: errors.New("disk gone")}, &recordingGenerator{})
	load(t, s)
	assert.Contains(t, s.View(100, 30), "disk gone")
}

func TestListAndModuleBars(t *testing.T) {
	r := fakeReader{
		events: []store.GenerationEvent{
			event(2, "fractions", "", 9, 4),
			event(1, "arithmetic", "", 7, 10),
		},
		modules: []store.ModuleUsage{
			{Module: "arithmetic", Batches: 1, Problems: 10},
			{Module: "fractions", Batches: 1, Problems: 4, Failed: 1},
		},
	}
	s := New(r, &recordingGenerator{})
	load(t, s)

	view := s.View(100, 30)
	assert.Contains(t, view, "seed 9")
	assert.Contains(t, view, "seed 7")
	assert.Contains(t, view, "3/4")
	assert.Contains(t, view, "10/10")
}

func TestReplayUsesRecordedSettings(t *testing.T) {
	r := fakeReader{events: []store.GenerationEvent{
		event(3, "rhythmic-counting", `{"step":3,"boxes":5}`, 1234, 6),
		event(2, "arithmetic", "", 7, 10),
	}}
	gen := &recordingGenerator{}
	s := New(r, gen)
	load(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)

	p, ok := push.Screen.(*preview.PreviewScreen)
	require.True(t, ok)
	p.Update(p.Init()())

	assert.Equal(t, worksheet.ModuleRhythm, gen.got.Module)
	assert.Equal(t, uint64(1234), gen.got.Seed)
	assert.Equal(t, 6, gen.got.Count)
	require.NotNil(t, gen.got.Rhythm)
	assert.Equal(t, 3, gen.got.Rhythm.Step)
}

func TestReplayUnknownModuleShowsError(t *testing.T) {
	s := New(fakeReader{events: []store.GenerationEvent{event(1, "gone", "", 1, 1)}}, &recordingGenerator{})
	load(t, s)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(100, 30), "unknown module")
}
