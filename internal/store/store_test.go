package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_Schema(t *testing.T) {
	s := openTestStore(t)

	var fk, synchronous int
	require.NoError(t, s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	require.NoError(t, s.db.QueryRow("PRAGMA synchronous").Scan(&synchronous))
	assert.Equal(t, 1, fk)
	assert.Equal(t, 1, synchronous, "NORMAL")

	names := []string{sequenceTable}
	for _, table := range Tables {
		names = append(names, table.Name)
	}
	for _, name := range names {
		var got string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&got)
		assert.NoError(t, err, name)
	}
}

func TestSequence_Concurrent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	const n = 20
	got := make(chan int64, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := s.seq.Next(ctx)
			assert.NoError(t, err)
			got <- seq
		}()
	}
	wg.Wait()
	close(got)

	seen := map[int64]bool{}
	for seq := range got {
		assert.False(t, seen[seq], "duplicate %d", seq)
		seen[seq] = true
		assert.True(t, seq >= 1 && seq <= n, "out of range %d", seq)
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()

	explicit := filepath.Join(dir, "a", "b", "h.db")
	p, err := ResolvePath(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, p)
	assert.DirExists(t, filepath.Join(dir, "a", "b"))

	t.Setenv("XDG_DATA_HOME", dir)
	p, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "worksheetz", "history.db"), p)
	_, err = os.Stat(filepath.Dir(p))
	assert.NoError(t, err)
}

func TestGenerationEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := uint64(1) << 63 // does not fit in int64
	for _, e := range []GenerationEventData{
		{BatchID: "a", Module: "arithmetic", Title: "Toplama", Seed: seed, Count: 10, LatencyMs: 3, Settings: `{"operation":"addition"}`},
		{BatchID: "b", Module: "attention-numerical", Count: 1, Failed: 1, ErrorKind: "exhausted", ErrorMessage: "gave up"},
		{BatchID: "c", Module: "arithmetic", Count: 5},
	} {
		require.NoError(t, repo.AppendGeneration(ctx, e), e.BatchID)
	}

	all, err := repo.QueryGenerations(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].BatchID, all[1].BatchID, all[2].BatchID}, "newest first")
	assert.Equal(t, seed, all[2].Seed)
	assert.Equal(t, `{"operation":"addition"}`, all[2].Settings)
	assert.Equal(t, "exhausted", all[1].ErrorKind)
	assert.Equal(t, 1, all[1].Failed)
	assert.WithinDuration(t, time.Now(), all[0].Timestamp, time.Minute)

	t.Run("module filter", func(t *testing.T) {
		got, err := repo.QueryGenerations(ctx, QueryOpts{Module: "arithmetic", Limit: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "c", got[0].BatchID)
	})

	t.Run("after", func(t *testing.T) {
		got, err := repo.QueryGenerations(ctx, QueryOpts{After: all[1].Sequence})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "c", got[0].BatchID)
	})
}

func TestLLMEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendGeneration(ctx, GenerationEventData{BatchID: "x", Module: "ai"}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "worksheet-gen",
		InputTokens: 10, OutputTokens: 20, Success: true,
	}))

	events, err := repo.QueryLLMRequests(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, int64(2), e.Sequence)
	assert.True(t, e.Success)
	assert.Equal(t, "worksheet-gen", e.Purpose)
	assert.Equal(t, 20, e.OutputTokens)
}
