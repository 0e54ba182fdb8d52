// Package logstore provides the append-only decision log behind the routing
// service, with two interchangeable backends: a bounded in-memory ring
// buffer and a durable SQLite table. Handlers depend only on Store and the
// backend is chosen once at startup.
package logstore

import (
	"context"
	"errors"
	"time"

	"github.com/QuantumPodLabs/quantumpod/internal/decision"
)

// ErrUnavailable indicates the backing store cannot be reached. Callers
// surface it as a degraded health status or a server error rather than
// silently dropping records.
var ErrUnavailable = errors.New("log store unavailable")

// Filter narrows a Query. The zero value means "newest records, default
// cap". Task and Since are honored by the durable backend only; the bounded
// backend ignores them.
type Filter struct {
	// Limit caps the result size. Non-positive means the backend default.
	Limit int
	// Task filters by exact task label when non-empty.
	Task string
	// Since is an inclusive lower bound on the record timestamp.
	Since time.Time
}

// Store is the append-only decision log. Records are immutable once
// appended; implementations only insert and read, never update. Query and
// StreamAll return records newest-first.
type Store interface {
	Append(ctx context.Context, rec decision.Record) error
	Query(ctx context.Context, f Filter) ([]decision.Record, error)
	Count(ctx context.Context) (int, error)
	// StreamAll feeds every retained record to fn in timestamp-descending
	// order, one row at a time, without materializing the full set. A non-nil
	// error from fn aborts the stream and is returned unchanged.
	StreamAll(ctx context.Context, fn func(decision.Record) error) error
	// Ping reports backend reachability for health checks.
	Ping(ctx context.Context) error
	Close() error
}
