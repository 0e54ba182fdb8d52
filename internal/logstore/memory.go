package logstore

import (
	"context"
	"sync"

	"github.com/QuantumPodLabs/quantumpod/internal/decision"
)

// DefaultCapacity bounds the in-memory log when no capacity is configured.
const DefaultCapacity = 1000

// Memory is the bounded in-memory backend: a fixed-capacity ring buffer
// with FIFO eviction. All access is serialized by one mutex; reads copy the
// requested window out under the lock so iteration never races with a
// concurrent eviction.
type Memory struct {
	mu   sync.Mutex
	buf  []decision.Record
	head int // index of the oldest record
	size int
}

// NewMemory builds a ring buffer holding at most capacity records.
// Non-positive capacities fall back to DefaultCapacity.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{buf: make([]decision.Record, capacity)}
}

func (m *Memory) Append(ctx context.Context, rec decision.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.size < len(m.buf) {
		m.buf[(m.head+m.size)%len(m.buf)] = rec
		m.size++
		return nil
	}
	// Full: overwrite the oldest slot and advance the head.
	m.buf[m.head] = rec
	m.head = (m.head + 1) % len(m.buf)
	return nil
}

// Query returns up to f.Limit records, newest first. Task and Since filters
// are a durable-backend capability and are ignored here.
func (m *Memory) Query(ctx context.Context, f Filter) ([]decision.Record, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultCapacity
	}
	return m.snapshot(limit), nil
}

func (m *Memory) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size, nil
}

func (m *Memory) StreamAll(ctx context.Context, fn func(decision.Record) error) error {
	for _, rec := range m.snapshot(len(m.buf)) {
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// Ping always succeeds; the buffer lives in-process.
func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Close() error { return nil }

// snapshot copies up to limit records out of the ring, newest first.
func (m *Memory) snapshot(limit int) []decision.Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.size
	if limit < n {
		n = limit
	}
	out := make([]decision.Record, 0, n)
	for i := 0; i < n; i++ {
		// Walk backwards from the newest slot.
		idx := (m.head + m.size - 1 - i + len(m.buf)) % len(m.buf)
		out = append(out, m.buf[idx])
	}
	return out
}
