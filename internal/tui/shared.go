// Package tui owns the interactive dashboard: the iteration line buffer with
// its scroll window, search state and highlight compositing, the shared
// producer/consumer line store, and the bubbletea model that paints it all.
package tui

import (
	"sync"

	"github.com/avashton/termstream/internal/styled"
)

// SharedLines is the line sequence shared between the interactive stream
// handler (producer) and the dashboard (consumer). The producer replaces the
// whole sequence atomically; consumers take a deep-copy snapshot, so layout
// never observes a half-built sequence. The lock is held only across the
// swap or the copy, never across parsing or rendering work.
type SharedLines struct {
	mu    sync.Mutex
	lines []styled.Line
}

// NewSharedLines creates an empty shared store.
func NewSharedLines() *SharedLines {
	return &SharedLines{}
}

// Replace swaps in a new full sequence. The caller hands over ownership of
// the slice and must not mutate it afterwards.
func (s *SharedLines) Replace(lines []styled.Line) {
	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current sequence.
func (s *SharedLines) Snapshot() []styled.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return styled.CloneLines(s.lines)
}

// Len returns the current number of lines.
func (s *SharedLines) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}
