// Package llm talks to hosted language models behind one Provider
// interface. Adapters exist for Anthropic, OpenAI, Gemini and OpenRouter;
// decorators add logging, retries and a per-call timeout.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one response per request. When the request carries a
// Schema the response content is JSON already validated against it.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Request is a single-turn or short multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema switches the adapter to its native structured-output mode.
	Schema *Schema

	MaxTokens int
	// Temperature in [0, 1]; zero leaves the provider default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name doubles as the OpenAI schema name
// and as the validation cache key, so it must be unique per definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is the provider-neutral reason generation ended.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish turns raw adapter output into a Response: truncated structured
// output is an error, and content is checked against req.Schema.
func finish(req Request, content json.RawMessage, usage Usage, model string, stop StopReason) (*Response, error) {
	if req.Schema != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// modelAliases maps short names accepted in config to provider model IDs.
// Names not listed pass through unchanged.
var modelAliases = map[string]string{
	"claude-haiku":      "claude-haiku-4-5",
	"claude-sonnet":     "claude-sonnet-4-5",
	"gpt-mini":          "gpt-4.1-mini",
	"gpt-nano":          "gpt-4.1-nano",
	"gemini-flash":      "gemini-2.5-flash",
	"gemini-flash-lite": "gemini-2.5-flash-lite",
	"gemini-pro":        "gemini-2.5-pro",
}

func resolveModel(name string) string {
	if id, ok := modelAliases[name]; ok {
		return id
	}
	return name
}
