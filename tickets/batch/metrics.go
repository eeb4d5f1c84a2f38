/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package batch

import (
	"chainguard.dev/ticketeval/tickets/evaluator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Row outcomes.
const (
	OutcomeEvaluated = "evaluated"
	OutcomeMissing   = "missing"
	OutcomeError     = "error"
)

// Metrics records per-row outcomes and scores on a private registry, so a
// run can be exported as a textfile without a metrics server.
type Metrics struct {
	registry *prometheus.Registry

	rows   *prometheus.CounterVec
	scores *prometheus.HistogramVec
}

// NewMetrics creates the batch metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	m := &Metrics{
		registry: reg,
		rows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ticketeval_rows_total",
				Help: "Total number of ticket rows processed, by outcome",
			},
			[]string{"outcome"},
		),
		scores: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ticketeval_score",
				Help:    "Scores assigned by the judge",
				Buckets: prometheus.LinearBuckets(1, 1, 5),
			},
			[]string{"dimension"},
		),
	}
	// Expose every outcome, even ones that never occur in a run.
	for _, outcome := range []string{OutcomeEvaluated, OutcomeMissing, OutcomeError} {
		m.rows.WithLabelValues(outcome)
	}
	return m
}

// Observe records one row's evaluation. A nil *Metrics ignores it.
func (m *Metrics) Observe(e evaluator.Evaluation) {
	if m == nil {
		return
	}
	switch {
	case e.IsMissingData():
		m.rows.WithLabelValues(OutcomeMissing).Inc()
	case e.IsError():
		m.rows.WithLabelValues(OutcomeError).Inc()
	default:
		m.rows.WithLabelValues(OutcomeEvaluated).Inc()
		if e.ContentScore != nil {
			m.scores.WithLabelValues("content").Observe(float64(*e.ContentScore))
		}
		if e.FormatScore != nil {
			m.scores.WithLabelValues("format").Observe(float64(*e.FormatScore))
		}
	}
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the current values in text exposition format,
// atomically replacing path.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
