package worksheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/problem"
)

func TestGenerateBundleKeepsOrder(t *testing.T) {
	d := newTestDispatcher()
	reqs := []Request{
		{Module: ModuleArithmetic, Count: 3},
		{Module: ModuleMapReading, Count: 4},
		{Module: ModuleReadiness, Count: 2, Seed: 77},
		{Module: ModuleMeasurement, Count: 5},
	}

	b := d.GenerateBundle(context.Background(), 1234, reqs)
	require.Len(t, b.Sections, len(reqs))
	assert.False(t, b.Failed())
	for i, s := range b.Sections {
		assert.Equal(t, string(reqs[i].Module), s.Module)
		assert.Len(t, s.Problems, reqs[i].Count)
	}
	assert.Equal(t, uint64(77), b.Sections[2].Seed)

	again := d.GenerateBundle(context.Background(), 1234, reqs)
	for i := range reqs {
		assert.Equal(t, b.Sections[i].Seed, again.Sections[i].Seed)
		assert.Equal(t, b.Sections[i].Problems, again.Sections[i].Problems)
	}
}

func TestGenerateBundleIsolatesFailures(t *testing.T) {
	b := newTestDispatcher().GenerateBundle(context.Background(), 0, []Request{
		{Module: "bogus"},
		{Module: ModuleGeometry, Count: 2},
	})
	assert.True(t, b.Failed())
	assert.NotZero(t, b.Seed)
	assert.Equal(t, problem.KindInvalidSettings, problem.KindOf(b.Sections[0].Err))
	assert.NoError(t, b.Sections[1].Err)
	assert.Len(t, b.Sections[1].Problems, 2)
}
