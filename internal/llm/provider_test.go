package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func say(text string) Request {
	return Request{Messages: []Message{{Role: RoleUser, Content: text}}}
}

func TestMockProvider(t *testing.T) {
	ctx := context.Background()
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockResponse{Err: &ErrRateLimit{}},
	)
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"x":`), StopReason: StopMaxTokens})
	assert.Equal(t, "mock", mock.ModelID())

	resp, err := mock.Generate(ctx, Request{System: "kısa"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(resp.Content))
	assert.Equal(t, 10, resp.Usage.InputTokens)
	assert.Equal(t, StopEnd, resp.StopReason)

	_, err = mock.Generate(ctx, say("ikinci"))
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	resp, err = mock.Generate(ctx, say("üçüncü"))
	require.NoError(t, err)
	assert.Equal(t, StopMaxTokens, resp.StopReason)

	_, err = mock.Generate(ctx, Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail, "script exhausted")

	assert.Equal(t, 4, mock.CallCount())
	reqs := mock.Requests()
	assert.Equal(t, "kısa", reqs[0].System)
	assert.Equal(t, "üçüncü", reqs[2].Messages[0].Content)

	reqs[0].System = "changed"
	assert.Equal(t, "kısa", mock.Requests()[0].System, "Requests returns a copy")
}

func TestFinish(t *testing.T) {
	schema := &Schema{Name: "finish-test", Definition: map[string]any{
		"type":     "object",
		"required": []any{"n"},
	}}

	resp, err := finish(Request{Schema: schema}, json.RawMessage(`{"n":1}`), Usage{InputTokens: 3, OutputTokens: 4}, "m", StopEnd)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Usage.TotalTokens)
	assert.Equal(t, "m", resp.Model)

	_, err = finish(Request{Schema: schema}, json.RawMessage(`{}`), Usage{}, "m", StopEnd)
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)

	_, err = finish(Request{Schema: schema}, json.RawMessage(`{"n":`), Usage{}, "m", StopMaxTokens)
	var truncated *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &truncated)

	// plain text requests are not checked, even when cut off
	_, err = finish(Request{}, json.RawMessage(`yarım`), Usage{}, "m", StopMaxTokens)
	assert.NoError(t, err)
}

func TestPurpose(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, PurposeWorksheet, PurposeFrom(WithPurpose(ctx, PurposeWorksheet)))
}

func TestConfig_Validate(t *testing.T) {
	keyed := func(provider string) Config {
		c := DefaultConfig()
		c.Provider = provider
		c.Providers()[provider].APIKey = "sk-test"
		return c
	}

	for _, name := range []string{"anthropic", "openai", "gemini", "openrouter"} {
		assert.NoError(t, keyed(name).Validate(), name)

		c := DefaultConfig()
		c.Provider = name
		assert.Error(t, c.Validate(), name)
	}
	assert.NoError(t, Config{Provider: "mock"}.Validate())
	assert.ErrorContains(t, Config{Provider: "unknown"}.Validate(), "unknown LLM provider")
}

func TestConfig_Discover(t *testing.T) {
	for _, v := range vendors {
		t.Setenv(v.env, "")
	}
	cfg := DefaultConfig()
	cfg.Provider = ""
	cfg.Anthropic.Model = "claude-sonnet"
	assert.False(t, cfg.Discover())

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	require.True(t, cfg.Discover())

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "sk-ant", cfg.Anthropic.APIKey)
	assert.Equal(t, "claude-sonnet", cfg.Anthropic.Model, "model kept")
	assert.Empty(t, cfg.OpenRouter.APIKey)
	assert.NoError(t, cfg.Validate())
}
