package store

import (
	"sync"
	"time"
)

// Memory is an in-memory tape for testing and tape-less sessions.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
	seq     int64
	now     func() time.Time
}

// NewMemory creates a new in-memory tape.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// Record appends an entry.
func (m *Memory) Record(e Entry) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	e.Seq = m.seq
	e.Ts = m.now().UTC()
	e = seal(e)
	m.entries = append(m.entries, e)
	return e, nil
}

// Entries returns the most recent entries, newest first.
func (m *Memory) Entries(limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Entry, 0, n)
	for i := len(m.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

// Reset deletes every entry. Sequence numbers keep increasing.
func (m *Memory) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

// Close is a no-op for memory tape.
func (m *Memory) Close() error {
	return nil
}
