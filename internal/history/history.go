// Package history implements the session-scoped generation log.
package history

import (
	"sync"

	"github.com/shivam5475/scriptai/internal/model"
)

// Log is an append-only, chronologically ordered record of generation events.
// It lives for the duration of a session and is never pruned or deduplicated.
// Safe for concurrent use.
type Log struct {
	mu     sync.Mutex
	events []model.GenerationEvent
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Append records an event at the end of the log.
func (l *Log) Append(ev model.GenerationEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

// All returns the events oldest first. The returned slice is a copy.
func (l *Log) All() []model.GenerationEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.GenerationEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len reports the number of recorded events.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// Restore replaces the log contents with a persisted history snapshot.
// Used when a project is loaded; there is no other way to shrink the log.
func (l *Log) Restore(events []model.GenerationEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = make([]model.GenerationEvent, len(events))
	copy(l.events, events)
}
