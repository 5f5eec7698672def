package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	err := r.insert(ctx, GenerationEventsTable.Name, columnNames(GenerationEventsColumns),
		data.BatchID,
		data.Module,
		data.Title,
		int64(data.Seed),
		data.Count,
		data.Failed,
		data.ErrorKind,
		data.ErrorMessage,
		data.LatencyMs,
		data.Settings,
	)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error) {
	sel := builder().Select(columnNames(GenerationEventsColumns)...).
		From(entsql.Table(GenerationEventsTable.Name))
	if opts.Module != "" {
		sel.Where(entsql.EQ("module", opts.Module))
	}
	query, args := opts.apply(sel).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}
	defer rows.Close()

	var out []GenerationEvent
	for rows.Next() {
		var (
			e    GenerationEvent
			seed int64
		)
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.BatchID, &e.Module, &e.Title, &seed,
			&e.Count, &e.Failed, &e.ErrorKind, &e.ErrorMessage, &e.LatencyMs, &e.Settings); err != nil {
			return nil, fmt.Errorf("scan generation event: %w", err)
		}
		e.Seed = uint64(seed)
		out = append(out, e)
	}
	return out, rows.Err()
}
