package store

import (
	"context"
	"testing"
)

func TestGetLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "worksheet-gen",
		Success: true, RequestBody: `{"messages":[]}`, ResponseBody: `{"content":"ok"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.GetLLMRequest(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Model != "claude-haiku-4-5" || e.RequestBody != `{"messages":[]}` {
		t.Fatalf("unexpected event %+v", e)
	}

	missing, err := repo.GetLLMRequest(ctx, 42)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown sequence, got %+v", missing)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []LLMRequestEventData{
		{Model: "gpt-4o-mini", Purpose: "worksheet-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 200},
		{Model: "gpt-4o-mini", Purpose: "worksheet-gen", InputTokens: 50, OutputTokens: 10, LatencyMs: 400},
		{Model: "gemini-2.5-flash", Purpose: "other", InputTokens: 7, OutputTokens: 3, LatencyMs: 100},
	} {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	// ordered by key: "other" < "worksheet-gen"
	w := byPurpose[1]
	if w.Key != "worksheet-gen" || w.Calls != 2 || w.InputTokens != 150 || w.OutputTokens != 50 || w.AvgLatencyMs != 300 {
		t.Errorf("unexpected worksheet-gen usage %+v", w)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Key != "gemini-2.5-flash" {
		t.Errorf("unexpected model usage %+v", byModel)
	}
}

func TestGenerationsByModule(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []GenerationEventData{
		{BatchID: "a", Module: "fractions", Count: 10},
		{BatchID: "b", Module: "fractions", Count: 5, Failed: 5, ErrorKind: "invalid-settings"},
		{BatchID: "c", Module: "arithmetic", Count: 20},
	} {
		if err := repo.AppendGeneration(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.GenerationsByModule(ctx)
	if err != nil {
		t.Fatalf("by module: %v", err)
	}
	want := []ModuleUsage{
		{Module: "arithmetic", Batches: 1, Problems: 20},
		{Module: "fractions", Batches: 2, Problems: 15, Failed: 5},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
