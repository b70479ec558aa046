package tui

import (
	"sync"
	"time"
)

// activeWindow is how long after the last stream event the session still
// counts as active for the footer indicator.
const activeWindow = 3 * time.Second

// State carries the session activity the footer reports. The stream handler
// writes it from the decoder goroutine while the dashboard reads it on every
// frame, so all access goes through the lock.
type State struct {
	mu sync.Mutex

	lastEvent   string
	lastEventAt time.Time
	// pendingTask is the label of the work still in flight; empty means the
	// session has concluded.
	pendingTask    string
	iterationAlert *int
}

// StateView is a consistent copy of State taken for one frame.
type StateView struct {
	LastEvent      string
	LastEventAt    time.Time
	PendingTask    string
	IterationAlert *int
}

// NewState creates a State with the given task pending.
func NewState(task string) *State {
	return &State{pendingTask: task}
}

// RecordEvent notes that a stream event arrived just now.
func (s *State) RecordEvent(label string) {
	s.mu.Lock()
	s.lastEvent = label
	s.lastEventAt = time.Now()
	s.mu.Unlock()
}

// SetPendingTask updates the in-flight task label.
func (s *State) SetPendingTask(task string) {
	s.mu.Lock()
	s.pendingTask = task
	s.mu.Unlock()
}

// Conclude marks the session as finished.
func (s *State) Conclude() {
	s.mu.Lock()
	s.pendingTask = ""
	s.mu.Unlock()
}

// SetIterationAlert flags that iteration n produced new content while the
// viewer was not following the latest output.
func (s *State) SetIterationAlert(n int) {
	s.mu.Lock()
	s.iterationAlert = &n
	s.mu.Unlock()
}

// ClearIterationAlert drops the new-content flag.
func (s *State) ClearIterationAlert() {
	s.mu.Lock()
	s.iterationAlert = nil
	s.mu.Unlock()
}

// View returns a copy of the current state.
func (s *State) View() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := StateView{
		LastEvent:   s.lastEvent,
		LastEventAt: s.lastEventAt,
		PendingTask: s.pendingTask,
	}
	if s.iterationAlert != nil {
		n := *s.iterationAlert
		v.IterationAlert = &n
	}
	return v
}

// Concluded reports whether the session has finished.
func (v StateView) Concluded() bool { return v.PendingTask == "" }

// ActiveAt reports whether the session counts as active at the given time:
// not concluded and a stream event arrived within the activity window.
func (v StateView) ActiveAt(now time.Time) bool {
	if v.Concluded() || v.LastEventAt.IsZero() {
		return false
	}
	return now.Sub(v.LastEventAt) <= activeWindow
}
