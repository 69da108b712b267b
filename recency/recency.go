// SPDX-License-Identifier: MIT
// Package: pixelcal/recency
//
// Package recency keeps the last N messages that were drawn so a caller can
// avoid showing the same one twice in a row.
//
// Buffer is a bounded FIFO backed by a ring. Adding to a full buffer evicts
// the oldest entry. Duplicates are kept: the buffer records history, it does
// not deduplicate it.
//
// Concurrency:
//   - All methods take mu; a *Buffer may be shared between goroutines.
package recency

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultCapacity is the history length used by callers that have no opinion.
const DefaultCapacity = 50

// ErrBadCapacity is returned by New when capacity < 1.
var ErrBadCapacity = errors.New("recency: capacity must be positive")

// Buffer is a bounded, thread-safe history of messages.
type Buffer struct {
	mu   sync.RWMutex // guards ring, head and n
	ring []string
	head int // index of the oldest entry
	n    int
}

// New returns an empty Buffer holding at most capacity entries.
func New(capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrBadCapacity)
	}
	return &Buffer{ring: make([]string, capacity)}, nil
}

// Add records msg as the newest entry. When the buffer was full it returns the
// evicted oldest entry and true.
func (b *Buffer) Add(msg string) (evicted string, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.n < len(b.ring) {
		b.ring[(b.head+b.n)%len(b.ring)] = msg
		b.n++
		return "", false
	}
	evicted = b.ring[b.head]
	b.ring[b.head] = msg
	b.head = (b.head + 1) % len(b.ring)
	return evicted, true
}

// Contains reports whether msg is in the history.
func (b *Buffer) Contains(msg string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i := 0; i < b.n; i++ {
		if b.ring[(b.head+i)%len(b.ring)] == msg {
			return true
		}
	}
	return false
}

// Fresh returns the candidates not in the history, order preserved.
func (b *Buffer) Fresh(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !b.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Items returns a copy of the history, oldest first.
func (b *Buffer) Items() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, b.n)
	for i := range out {
		out[i] = b.ring[(b.head+i)%len(b.ring)]
	}
	return out
}

// Len is the number of entries held.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.n
}

// Cap is the maximum number of entries.
func (b *Buffer) Cap() int { return len(b.ring) }

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.ring)
	b.head, b.n = 0, 0
}
