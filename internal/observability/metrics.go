// Package observability provides Prometheus metrics and logging for report runs.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "price_impact_report"

// Metrics holds all Prometheus metrics of a report run.
// Each instance owns its registry so runs and tests do not share state.
type Metrics struct {
	registry *prometheus.Registry

	// Ingestion metrics
	RowsParsed       *prometheus.CounterVec
	BookLinesSkipped prometheus.Counter
	EventsDropped    *prometheus.CounterVec

	// Aggregation metrics
	CandlesBuilt   prometheus.Gauge
	IntervalsBuilt prometheus.Gauge

	// Pipeline metrics
	StageDuration    *prometheus.HistogramVec
	ReportsGenerated prometheus.Counter

	// Health metrics
	LastSuccessfulRun prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// Ingestion metrics
		RowsParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "rows_parsed_total",
			Help:      "Total number of rows parsed by log kind",
		}, []string{"kind"}),
		BookLinesSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "book_lines_skipped_total",
			Help:      "Total number of book log lines that were not data lines",
		}),
		EventsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "strategy_events_dropped_total",
			Help:      "Total number of deactivate events without a matching activate",
		}, []string{"strategy"}),

		// Aggregation metrics
		CandlesBuilt: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "aggregation",
			Name:      "candles",
			Help:      "Number of candles built for the last run",
		}),
		IntervalsBuilt: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "aggregation",
			Name:      "strategy_intervals",
			Help:      "Number of strategy intervals built for the last run",
		}),

		// Pipeline metrics
		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"stage"}),
		ReportsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "reports_generated_total",
			Help:      "Total number of HTML reports written",
		}),

		// Health metrics
		LastSuccessfulRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_run_timestamp",
			Help:      "Unix timestamp of last successful report run",
		}),
	}
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRows adds parsed rows for a log kind.
func (m *Metrics) RecordRows(kind string, n int) {
	m.RowsParsed.WithLabelValues(kind).Add(float64(n))
}

// RecordSkippedBookLines adds skipped book lines.
func (m *Metrics) RecordSkippedBookLines(n int) {
	m.BookLinesSkipped.Add(float64(n))
}

// RecordDroppedEvent counts one dropped strategy event.
func (m *Metrics) RecordDroppedEvent(strategy string) {
	m.EventsDropped.WithLabelValues(strategy).Inc()
}

// RecordAggregates sets the aggregation gauges.
func (m *Metrics) RecordAggregates(candles, intervals int) {
	m.CandlesBuilt.Set(float64(candles))
	m.IntervalsBuilt.Set(float64(intervals))
}

// ObserveStage records the duration of a pipeline stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordReport records a written report at the given time.
func (m *Metrics) RecordReport(at time.Time) {
	m.ReportsGenerated.Inc()
	m.LastSuccessfulRun.Set(float64(at.Unix()))
}

// WriteTextfile writes all metrics in text exposition format, for the
// node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
