// Package metrics holds the prometheus collectors shared by the syllable
// counter and the corpus scorer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "leesbaar"

	sourceLabelName = "source"
	statusLabelName = "status"

	// StatusOK labels a document that was scored.
	StatusOK = "ok"
	// StatusEmpty labels a document without countable words.
	StatusEmpty = "empty"
	// StatusFailed labels a document whose scoring failed.
	StatusFailed = "failed"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	SyllableLookups *prometheus.CounterVec
	DocumentsScored *prometheus.CounterVec
	ScoreLatency    prometheus.Histogram
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered, which is what tests usually want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SyllableLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "syllable",
			Name:      "lookups_total",
			Help:      "syllable counts by the source that answered (dictionary, compound, estimator)",
		}, []string{sourceLabelName}),
		DocumentsScored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scoring",
			Name:      "documents_total",
			Help:      "documents scored by outcome",
		}, []string{statusLabelName}),
		ScoreLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scoring",
			Name:      "document_seconds",
			Help:      "time spent aggregating and scoring one document",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.SyllableLookups, m.DocumentsScored, m.ScoreLatency)
	}
	return m
}

// ObserveLookup counts one syllable lookup answered by source.
func (m *Metrics) ObserveLookup(source string) {
	if m == nil {
		return
	}
	m.SyllableLookups.WithLabelValues(source).Inc()
}

// ObserveDocument counts one scored document and how long it took.
func (m *Metrics) ObserveDocument(status string, seconds float64) {
	if m == nil {
		return
	}
	m.DocumentsScored.WithLabelValues(status).Inc()
	m.ScoreLatency.Observe(seconds)
}
