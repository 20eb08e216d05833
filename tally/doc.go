// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally aggregates screening outcomes into per-job pipeline counters.

# Counters

Each job has three counters:

  - Applied: candidates who started the screening
  - KnockedOut: candidates eliminated by a wrong answer
  - Shortlisted: candidates who passed and submitted an application

# Aggregator

Aggregator implements screening.Sink. Sessions running concurrently can
share one aggregator; updates are serialized and each (session, kind) pair
is counted at most once, so replayed events do not double count:

	agg := tally.NewAggregator(tally.NewMetrics(registry))
	session := screening.New(id, jobID, def, agg)

A session's entry is released once it is knocked out or shortlisted. The
last FinishedRetention finished sessions are remembered so late replays are
still ignored.

# Metrics

NewMetrics registers dmless_screening_outcomes_total{kind} on the given
Prometheus registerer. The router exposes it on GET /metrics.
*/
package tally
