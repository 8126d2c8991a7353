// Package metrics exposes tagging pipeline counters through Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "finnote"

// TaggingMetrics implements notetag.Metrics on Prometheus collectors.
type TaggingMetrics struct {
	registry *prometheus.Registry

	extractionsTotal   prometheus.Counter
	extractionDuration prometheus.Histogram
	candidatesTotal    *prometheus.CounterVec
	resolvedTotal      prometheus.Counter
	discardedTotal     prometheus.Counter
	skippedTotal       prometheus.Counter
}

// NewTaggingMetrics builds and registers the tagging collectors on a fresh
// registry, alongside process and Go runtime collectors.
func NewTaggingMetrics() *TaggingMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{Namespace: namespace}),
		prometheus.NewGoCollector(),
	)

	m := &TaggingMetrics{
		registry: registry,
		extractionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Number of extraction runs.",
		}),
		extractionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Duration of a single extraction run.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		candidatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Candidate spans produced, labelled by source.",
		}, []string{"source"}),
		resolvedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolved_spans_total",
			Help:      "Spans surviving overlap resolution.",
		}),
		discardedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discarded_spans_total",
			Help:      "Candidate spans discarded during overlap resolution.",
		}),
		skippedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_units_total",
			Help:      "Text units bypassed by the skip flag.",
		}),
	}
	registry.MustRegister(
		m.extractionsTotal,
		m.extractionDuration,
		m.candidatesTotal,
		m.resolvedTotal,
		m.discardedTotal,
		m.skippedTotal,
	)
	return m
}

// RecordExtraction observes one completed extraction run.
func (m *TaggingMetrics) RecordExtraction(candidates, resolved int, duration time.Duration) {
	m.extractionsTotal.Inc()
	m.extractionDuration.Observe(duration.Seconds())
	m.resolvedTotal.Add(float64(resolved))
	if discarded := candidates - resolved; discarded > 0 {
		m.discardedTotal.Add(float64(discarded))
	}
}

// RecordCandidates counts candidate spans attributed to a source.
func (m *TaggingMetrics) RecordCandidates(source string, n int) {
	if n > 0 {
		m.candidatesTotal.WithLabelValues(source).Add(float64(n))
	}
}

// RecordSkipped counts a unit that was bypassed without extraction.
func (m *TaggingMetrics) RecordSkipped() {
	m.skippedTotal.Inc()
}

// Handler serves the registry in Prometheus exposition format.
func (m *TaggingMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry exposes the underlying registry for additional collectors.
func (m *TaggingMetrics) Registry() *prometheus.Registry {
	return m.registry
}
