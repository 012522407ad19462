// metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the metrics of one report run. Each collector owns its
// registry, so a run (or a test) never collides with the global one.
type Collector struct {
	registry *prometheus.Registry

	// Ingestion
	AirportsLoaded       prometheus.Gauge
	RecordsTotal         prometheus.Counter
	FlightsIngested      prometheus.Counter
	IngestionErrorsTotal *prometheus.CounterVec

	// Aggregation
	SegmentsTotal      prometheus.Gauge
	TotalDistanceMiles prometheus.Gauge

	// Stage timings (load, aggregate, render, maps)
	StageDuration *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		AirportsLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "airports_loaded",
				Help:      "Number of airports in the reference table",
			},
		),

		RecordsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flight_records_total",
				Help:      "Total number of flight log records read",
			},
		),

		FlightsIngested: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flights_ingested_total",
				Help:      "Number of flight log records turned into flights",
			},
		),

		IngestionErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ingestion_errors_total",
				Help:      "Total number of rejected flight records by error type",
			},
			[]string{"error_type"},
		),

		SegmentsTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "segments",
				Help:      "Number of non-zero-length flown segments",
			},
		),

		TotalDistanceMiles: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "total_distance_miles",
				Help:      "Great-circle distance flown, in statute miles",
			},
		),

		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of each report stage in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"stage"},
		),
	}
}

// Timer provides timing functionality for stages
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer starts timing the named stage
func (c *Collector) NewTimer(stage string) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: c.StageDuration.WithLabelValues(stage),
	}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// RecordIngestionError increments the ingestion error counter
func (c *Collector) RecordIngestionError(errorType string) {
	c.IngestionErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordTotals sets the aggregate gauges
func (c *Collector) RecordTotals(segments int, distanceMiles float64) {
	c.SegmentsTotal.Set(float64(segments))
	c.TotalDistanceMiles.Set(distanceMiles)
}

// Gatherer exposes the collector's registry.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// WriteTextfile writes the current values in the Prometheus text format,
// suitable for the node exporter's textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
