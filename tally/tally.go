// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"slices"
	"sync"

	"github.com/danielhkuo/dmless/screening"
)

// Tally is a job's pipeline counters.
type Tally struct {
	Applied     int `json:"applied"`
	KnockedOut  int `json:"knocked_out"`
	Shortlisted int `json:"shortlisted"`
}

// Add increments the counter for kind. Unknown kinds are ignored.
func (t *Tally) Add(kind screening.EventKind) {
	switch kind {
	case screening.EventApplied:
		t.Applied++
	case screening.EventKnockedOut:
		t.KnockedOut++
	case screening.EventShortlisted:
		t.Shortlisted++
	}
}

// Merge adds other's counters into t.
func (t *Tally) Merge(other Tally) {
	t.Applied += other.Applied
	t.KnockedOut += other.KnockedOut
	t.Shortlisted += other.Shortlisted
}

// FinishedRetention is how many finished sessions an Aggregator remembers
// for de-duplication after their terminal event.
const FinishedRetention = 10000

// Aggregator tallies session events for every job. All updates are
// serialized behind one mutex and each (session, kind) pair counts once.
//
// Per-session state is dropped when the session reaches a terminal event.
// Finished session ids are kept in a ring of FinishedRetention entries, so
// memory stays bounded; a replay for a session older than that window is
// counted again. The durable tally in the store does not have this limit.
type Aggregator struct {
	mu       sync.Mutex
	jobs     map[string]*Tally
	open     map[string][]screening.EventKind
	finished map[string]struct{}
	ring     []string
	next     int
	retain   int
	metrics  *Metrics
}

// NewAggregator returns an empty aggregator. m may be nil.
func NewAggregator(m *Metrics) *Aggregator {
	return &Aggregator{
		jobs:     make(map[string]*Tally),
		open:     make(map[string][]screening.EventKind),
		finished: make(map[string]struct{}),
		retain:   FinishedRetention,
		metrics:  m,
	}
}

// Record implements screening.Sink.
func (a *Aggregator) Record(ev screening.Event) {
	a.record(ev)
}

// record reports whether the event was counted.
func (a *Aggregator) record(ev screening.Event) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, done := a.finished[ev.SessionID]; done {
		return false
	}
	seen := a.open[ev.SessionID]
	if slices.Contains(seen, ev.Kind) {
		return false
	}

	if isTerminal(ev.Kind) {
		delete(a.open, ev.SessionID)
		a.finish(ev.SessionID)
	} else {
		a.open[ev.SessionID] = append(seen, ev.Kind)
	}

	t, ok := a.jobs[ev.JobID]
	if !ok {
		t = &Tally{}
		a.jobs[ev.JobID] = t
	}
	t.Add(ev.Kind)

	if a.metrics != nil {
		a.metrics.observe(ev.Kind)
	}
	return true
}

// finish remembers id, evicting the oldest finished session once the ring is full.
func (a *Aggregator) finish(id string) {
	if len(a.ring) < a.retain {
		a.ring = append(a.ring, id)
	} else {
		delete(a.finished, a.ring[a.next])
		a.ring[a.next] = id
		a.next = (a.next + 1) % a.retain
	}
	a.finished[id] = struct{}{}
}

func isTerminal(kind screening.EventKind) bool {
	return kind == screening.EventKnockedOut || kind == screening.EventShortlisted
}

// Job returns the counters for one job.
func (a *Aggregator) Job(jobID string) Tally {
	a.mu.Lock()
	defer a.mu.Unlock()
	if t, ok := a.jobs[jobID]; ok {
		return *t
	}
	return Tally{}
}

// Jobs returns a copy of every job's counters.
func (a *Aggregator) Jobs() map[string]Tally {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]Tally, len(a.jobs))
	for id, t := range a.jobs {
		out[id] = *t
	}
	return out
}

// Totals sums the counters across jobs.
func (a *Aggregator) Totals() Tally {
	a.mu.Lock()
	defer a.mu.Unlock()
	var total Tally
	for _, t := range a.jobs {
		total.Merge(*t)
	}
	return total
}
