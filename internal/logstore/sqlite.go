package logstore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/QuantumPodLabs/quantumpod/internal/decision"
	"github.com/QuantumPodLabs/quantumpod/internal/policy"
)

//go:embed schema.sql
var schemaSQL string

// queryCap bounds any single Query against the durable backend when the
// caller does not set its own limit.
const queryCap = 1000

// SQLite is the durable backend: an unbounded, append-only decisions table.
// Uses WAL mode so reads proceed during writes; each request borrows a
// short-lived connection from the database/sql pool.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates or opens the decision log at the given path and applies
// pragmas and the schema. Idempotent; safe to call on an existing database.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// SQLite allows a single writer; keep the pool small to avoid
	// SQLITE_BUSY under concurrent appends.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Append(ctx context.Context, rec decision.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO decisions (id, ts, task, complexity, decision, client_ip, user_agent, path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Timestamp.UnixNano(), rec.Task, rec.Complexity, string(rec.Decision),
		rec.ClientIP, rec.UserAgent, rec.Path)
	if err != nil {
		return fmt.Errorf("%w: insert decision: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLite) Query(ctx context.Context, f Filter) ([]decision.Record, error) {
	limit := f.Limit
	if limit <= 0 || limit > queryCap {
		limit = queryCap
	}

	q := `SELECT id, ts, task, complexity, decision, client_ip, user_agent, path
		FROM decisions WHERE 1=1`
	args := []any{}
	if f.Task != "" {
		q += " AND task = ?"
		args = append(args, f.Task)
	}
	if !f.Since.IsZero() {
		q += " AND ts >= ?"
		args = append(args, f.Since.UnixNano())
	}
	q += " ORDER BY ts DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query decisions: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	out := []decision.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate decisions: %v", ErrUnavailable, err)
	}
	return out, nil
}

func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM decisions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count decisions: %v", ErrUnavailable, err)
	}
	return n, nil
}

// StreamAll walks the whole table newest-first, handing one record at a time
// to fn. The result set is never materialized; exports of large logs stay
// flat in memory.
func (s *SQLite) StreamAll(ctx context.Context, fn func(decision.Record) error) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ts, task, complexity, decision, client_ip, user_agent, path
		FROM decisions ORDER BY ts DESC, id DESC
	`)
	if err != nil {
		return fmt.Errorf("%w: stream decisions: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: iterate decisions: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func scanRecord(rows *sql.Rows) (decision.Record, error) {
	var rec decision.Record
	var ts int64
	var label string
	if err := rows.Scan(&rec.ID, &ts, &rec.Task, &rec.Complexity, &label,
		&rec.ClientIP, &rec.UserAgent, &rec.Path); err != nil {
		return decision.Record{}, fmt.Errorf("scan decision: %w", err)
	}
	rec.Timestamp = time.Unix(0, ts).UTC()
	rec.Decision = policy.Label(label)
	return rec, nil
}
