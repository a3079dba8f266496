// Package metrics wires the scan engine's Prometheus collectors,
// mirroring the sync.Once singleton the rest of the corpus uses for
// its application-wide Metrics struct. No HTTP /metrics endpoint is
// exposed here (transport is out of scope for this core), and the CLI
// does not print the collectors either; callers gather them directly.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ScanMetrics holds the Prometheus collectors for the scan pipeline.
// The scan driver counts every skipped probe, whether its extraction
// or its comparison failed, under ExtractionErrorsTotal; it does not
// increment ComparisonErrorsTotal.
type ScanMetrics struct {
	ScansTotal             prometheus.Counter
	TagsEmittedTotal       prometheus.Counter
	ExtractionErrorsTotal  prometheus.Counter
	ComparisonErrorsTotal  prometheus.Counter
	ScanDuration           prometheus.Histogram
	WindowCollectDuration  prometheus.Histogram
}

var (
	instance *ScanMetrics
	once     sync.Once
)

// Get returns the process-wide ScanMetrics singleton, registering its
// collectors with the default registry on first use.
func Get() *ScanMetrics {
	once.Do(func() {
		instance = &ScanMetrics{
			ScansTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "trigger_scans_total",
				Help: "Total number of completed scans.",
			}),
			TagsEmittedTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "trigger_tags_emitted_total",
				Help: "Total number of tags emitted across all scans, after pruning and payload extraction.",
			}),
			ExtractionErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "trigger_extraction_errors_total",
				Help: "Total number of probes skipped due to a fingerprint extraction or comparison failure.",
			}),
			ComparisonErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "trigger_comparison_errors_total",
				Help: "Total number of probes skipped due to a fingerprint comparison failure.",
			}),
			ScanDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "trigger_scan_duration_seconds",
				Help:    "Wall-clock duration of a full scan.",
				Buckets: prometheus.DefBuckets,
			}),
			WindowCollectDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "trigger_window_collect_duration_seconds",
				Help:    "Duration of a single WindowCollector probe group.",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			}),
		}
	})
	return instance
}

// Reset clears the singleton so tests can start from a fresh registry.
// Not used by production code.
func Reset() {
	if instance != nil {
		for _, c := range []prometheus.Collector{
			instance.ScansTotal, instance.TagsEmittedTotal,
			instance.ExtractionErrorsTotal, instance.ComparisonErrorsTotal,
			instance.ScanDuration, instance.WindowCollectDuration,
		} {
			prometheus.DefaultRegisterer.Unregister(c)
		}
	}
	once = sync.Once{}
	instance = nil
}
