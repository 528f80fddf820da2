package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// region service and its classification pipeline.
type Metrics struct {
	// Region API metrics.
	Lookups        *prometheus.CounterVec   // labels: op={locate,region,regions,extent}, outcome={success,invalid,not_found,limited,error}
	LookupDuration *prometheus.HistogramVec // labels: op
	ExtentCache    *prometheus.CounterVec   // labels: result={hit,miss}
	DatasetRegions prometheus.Gauge

	// Pipeline metrics.
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Region enrichment outcomes. labels: outcome={classified,failed}
	Enrichment *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Lookups,
		m.LookupDuration,
		m.ExtentCache,
		m.DatasetRegions,
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.Enrichment,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "feregion",
			Name:      "lookups_total",
			Help:      "Region API requests by operation and outcome.",
		}, []string{"op", "outcome"}),
		LookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "feregion",
			Name:      "lookup_duration_seconds",
			Help:      "Region API request duration in seconds.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"op"}),
		ExtentCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "feregion",
			Name:      "extent_cache_total",
			Help:      "Extent cache lookups by result.",
		}, []string{"result"}),
		DatasetRegions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "feregion",
			Name:      "dataset_regions",
			Help:      "Number of geographical regions in the loaded dataset.",
		}),
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "feregion",
			Name:      "messages_consumed_total",
			Help:      "Total messages read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "feregion",
			Name:      "messages_produced_total",
			Help:      "Total messages written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "feregion",
			Name:      "transform_errors_total",
			Help:      "Total transformation failures.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "feregion",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "feregion",
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "feregion",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		Enrichment: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "feregion",
			Name:      "enrichment_total",
			Help:      "Earthquake events by region enrichment outcome.",
		}, []string{"outcome"}),
	}
}
