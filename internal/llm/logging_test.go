package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/store"
)

func TestLogging_RecordsEvents(t *testing.T) {
	s, err := store.Open("file:llm_logging?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	repo := s.EventRepo()

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 7, OutputTokens: 3}},
		MockResponse{Err: errors.New("boom")},
	)
	p := WithLogging(mock, repo, nil)
	ctx := WithPurpose(context.Background(), PurposeWorksheet)

	_, err = p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.NoError(t, err)
	_, err = p.Generate(ctx, Request{})
	require.Error(t, err)

	events, err := repo.QueryLLMRequests(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	failed, ok := events[0], events[1]
	assert.False(t, failed.Success)
	assert.Equal(t, "boom", failed.ErrorMessage)

	assert.True(t, ok.Success)
	assert.Equal(t, PurposeWorksheet, ok.Purpose)
	assert.Equal(t, 7, ok.InputTokens)
	assert.Contains(t, ok.RequestBody, "[system]")
	assert.JSONEq(t, `{"ok":true}`, ok.ResponseBody)
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestLogging_KeepsRejectedOutput(t *testing.T) {
	s, err := store.Open("file:llm_logging_rejected?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	repo := s.EventRepo()

	mock := NewMockProvider(MockResponse{Err: &ErrInvalidResponse{
		Content: json.RawMessage(`{"cevap":1}`),
		Err:     errors.New("missing answer"),
	}})
	_, err = WithLogging(mock, repo, nil).Generate(context.Background(), Request{})
	require.Error(t, err)

	events, err := repo.QueryLLMRequests(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, `{"cevap":1}`, events[0].ResponseBody)
	assert.Equal(t, "unknown", events[0].Purpose)
}
