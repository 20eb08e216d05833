// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package screening

import "sync"

// EventKind is an outcome milestone reported to the tally.
type EventKind string

const (
	EventApplied     EventKind = "applied"
	EventKnockedOut  EventKind = "knocked_out"
	EventShortlisted EventKind = "shortlisted"
)

// Event is emitted once per session per milestone.
type Event struct {
	Kind      EventKind `json:"kind"`
	JobID     string    `json:"job_id"`
	SessionID string    `json:"session_id"`
}

// Sink receives session events. Implementations shared between sessions must
// serialize their own updates.
type Sink interface {
	Record(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

func (f SinkFunc) Record(ev Event) { f(ev) }

type discard struct{}

func (discard) Record(Event) {}

// Recorder buffers events so a caller can persist a session change and its
// events together, then forward them.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns the buffered events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Forward sends every buffered event to sink and clears the buffer.
func (r *Recorder) Forward(sink Sink) {
	r.mu.Lock()
	events := r.events
	r.events = nil
	r.mu.Unlock()

	for _, ev := range events {
		sink.Record(ev)
	}
}
