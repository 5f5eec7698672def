package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) GetLLMRequest(ctx context.Context, seq int64) (*LLMRequestEvent, error) {
	query, args := builder().Select(columnNames(LlmRequestEventsColumns)...).
		From(entsql.Table(LlmRequestEventsTable.Name)).
		Where(entsql.EQ(colSequence, seq)).
		Query()

	var e LLMRequestEvent
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&e.Sequence, &e.Timestamp, &e.Provider,
		&e.Model, &e.Purpose, &e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM request event %d: %w", seq, err)
	}
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]Usage, error) {
	return r.llmUsage(ctx, "purpose")
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]Usage, error) {
	return r.llmUsage(ctx, "model")
}

func (r *eventRepo) llmUsage(ctx context.Context, key string) ([]Usage, error) {
	query, args := builder().Select(
		key,
		entsql.Count("*"),
		entsql.Sum("input_tokens"),
		entsql.Sum("output_tokens"),
		entsql.Avg("latency_ms"),
	).
		From(entsql.Table(LlmRequestEventsTable.Name)).
		GroupBy(key).
		OrderBy(key).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by %s: %w", key, err)
	}
	defer rows.Close()

	var out []Usage
	for rows.Next() {
		var (
			u   Usage
			avg float64
		)
		if err := rows.Scan(&u.Key, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *eventRepo) GenerationsByModule(ctx context.Context) ([]ModuleUsage, error) {
	query, args := builder().Select(
		"module",
		entsql.Count("*"),
		entsql.Sum("count"),
		entsql.Sum("failed"),
	).
		From(entsql.Table(GenerationEventsTable.Name)).
		GroupBy("module").
		OrderBy("module").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query generations by module: %w", err)
	}
	defer rows.Close()

	var out []ModuleUsage
	for rows.Next() {
		var m ModuleUsage
		if err := rows.Scan(&m.Module, &m.Batches, &m.Problems, &m.Failed); err != nil {
			return nil, fmt.Errorf("scan module usage: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
