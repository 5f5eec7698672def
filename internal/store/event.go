package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequence hands out the number that orders rows across every event table,
// so a batch and the LLM calls it made can be read back in order. The
// counter row is bumped in the same transaction as the insert.
type sequence struct {
	mu sync.Mutex
	db *sql.DB
}

const sequenceTable = "event_sequence"

func newSequence(ctx context.Context, db *sql.DB) (*sequence, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ` + sequenceTable + ` (id INTEGER PRIMARY KEY CHECK (id = 1), last INTEGER NOT NULL)`,
		`INSERT OR IGNORE INTO ` + sequenceTable + ` (id, last) VALUES (1, 0)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("init sequence: %w", err)
		}
	}
	return &sequence{db: db}, nil
}

// write runs fn in a transaction with the next sequence number.
func (s *sequence) write(ctx context.Context, fn func(tx *sql.Tx, seq int64) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	var seq int64
	err = tx.QueryRowContext(ctx,
		`UPDATE `+sequenceTable+` SET last = last + 1 WHERE id = 1 RETURNING last`).Scan(&seq)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("next sequence: %w", err)
	}
	if err := fn(tx, seq); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Next allocates a sequence number without writing an event.
func (s *sequence) Next(ctx context.Context) (int64, error) {
	var got int64
	err := s.write(ctx, func(_ *sql.Tx, seq int64) error {
		got = seq
		return nil
	})
	return got, err
}

type eventRepo struct {
	db  *sql.DB
	seq *sequence
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// insert adds a row to table. cols starts with the sequence and timestamp
// columns, which are filled in here; values holds the rest.
func (r *eventRepo) insert(ctx context.Context, table string, cols []string, values ...any) error {
	return r.seq.write(ctx, func(tx *sql.Tx, seq int64) error {
		row := append([]any{seq, time.Now().UTC()}, values...)
		query, args := builder().Insert(table).Columns(cols...).Values(row...).Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
		return nil
	})
}
