// Package logbuf keeps a bounded, in-memory tail of recent log lines so a
// reporting surface can show what the pipeline has been doing.
package logbuf

import (
	"sync"
	"time"
)

// DefaultCapacity is the number of entries retained when none is configured.
const DefaultCapacity = 1000

// Entry is one captured log line.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
}

// Buffer is a fixed-capacity ring of log entries. The oldest entry is
// overwritten once the buffer is full. Safe for concurrent use.
type Buffer struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

// New creates a Buffer holding at most capacity entries.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{entries: make([]Entry, capacity)}
}

// Add appends an entry, evicting the oldest one when full.
func (b *Buffer) Add(e Entry) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[b.next] = e
	b.next = (b.next + 1) % len(b.entries)
	if b.next == 0 {
		b.full = true
	}
}

// Entries returns up to limit of the most recent entries in chronological
// order. Entries at or before since are excluded when since is non-zero.
// A limit <= 0 returns everything retained.
func (b *Buffer) Entries(limit int, since time.Time) []Entry {
	b.mu.Lock()
	ordered := b.snapshotLocked()
	b.mu.Unlock()

	if !since.IsZero() {
		filtered := ordered[:0]
		for _, e := range ordered {
			if e.Timestamp.After(since) {
				filtered = append(filtered, e)
			}
		}
		ordered = filtered
	}

	if limit > 0 && len(ordered) > limit {
		ordered = ordered[len(ordered)-limit:]
	}
	return ordered
}

// Len returns the number of retained entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.full {
		return len(b.entries)
	}
	return b.next
}

// Capacity returns the maximum number of retained entries.
func (b *Buffer) Capacity() int {
	return len(b.entries)
}

// Clear drops all retained entries.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.entries {
		b.entries[i] = Entry{}
	}
	b.next = 0
	b.full = false
}

func (b *Buffer) snapshotLocked() []Entry {
	if !b.full {
		out := make([]Entry, b.next)
		copy(out, b.entries[:b.next])
		return out
	}
	out := make([]Entry, 0, len(b.entries))
	out = append(out, b.entries[b.next:]...)
	out = append(out, b.entries[:b.next]...)
	return out
}
