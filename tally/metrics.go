// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/danielhkuo/dmless/screening"
)

// Metrics exports screening outcomes as Prometheus counters.
type Metrics struct {
	outcomes *prometheus.CounterVec
}

// NewMetrics registers the outcome counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		outcomes: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "dmless_screening_outcomes_total",
				Help: "Screening outcomes by kind (applied, knocked_out, shortlisted)",
			},
			[]string{"kind"},
		),
	}
	// Every kind is exported at zero before its first event.
	for _, kind := range []screening.EventKind{screening.EventApplied, screening.EventKnockedOut, screening.EventShortlisted} {
		m.outcomes.WithLabelValues(string(kind))
	}
	return m
}

func (m *Metrics) observe(kind screening.EventKind) {
	m.outcomes.WithLabelValues(string(kind)).Inc()
}
