package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SummaryMetricsRecorder defines the interface for recording summary-related metrics.
// This interface abstracts the metrics recording implementation, enabling:
//   - Mocking in unit tests (inject mock recorder instead of Prometheus)
//   - Swapping metrics systems without touching the providers
//   - Reusability across different AI providers (Claude, OpenAI)
type SummaryMetricsRecorder interface {
	// RecordWords records the length of a generated chunk summary in words.
	RecordWords(words int)

	// RecordBoundsExceeded increments the counter when a summary falls outside
	// the requested (max, min) word bounds.
	RecordBoundsExceeded()

	// RecordCompliance records whether a summary landed inside the requested bounds.
	// This is used to calculate the compliance ratio gauge.
	RecordCompliance(withinBounds bool)

	// RecordDuration records the time taken to generate a chunk summary.
	RecordDuration(duration time.Duration)
}

// PrometheusSummaryMetrics implements SummaryMetricsRecorder using Prometheus metrics.
// This is the production implementation.
type PrometheusSummaryMetrics struct {
	wordsHistogram    prometheus.Histogram
	exceededCounter   prometheus.Counter
	complianceGauge   prometheus.Gauge
	durationHistogram prometheus.Histogram
}

var (
	prometheusMetricsInstance *PrometheusSummaryMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one if it doesn't exist
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateCounter gets an existing counter or creates a new one if it doesn't exist
func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

// getOrCreateGauge gets an existing gauge or creates a new one if it doesn't exist
func getOrCreateGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	g := prometheus.NewGauge(opts)
	if err := prometheus.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Gauge)
		}
		return promauto.NewGauge(opts)
	}
	return g
}

// NewPrometheusSummaryMetrics creates a new Prometheus-based metrics recorder.
// It initializes and registers all required Prometheus metrics.
// Uses singleton pattern to avoid duplicate metric registration in tests.
func NewPrometheusSummaryMetrics() *PrometheusSummaryMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusSummaryMetrics{
			wordsHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "chunk_summary_length_words",
				Help:    "Distribution of chunk summary lengths in words",
				Buckets: []float64{10, 20, 40, 60, 90, 120, 160, 200, 300},
			}),
			exceededCounter: getOrCreateCounter(prometheus.CounterOpts{
				Name: "chunk_summary_bounds_exceeded_total",
				Help: "Total number of chunk summaries outside the requested word bounds",
			}),
			complianceGauge: getOrCreateGauge(prometheus.GaugeOpts{
				Name: "chunk_summary_bounds_compliance_ratio",
				Help: "Whether the latest chunk summary landed inside the requested bounds (0 or 1)",
			}),
			durationHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "chunk_summarization_duration_seconds",
				Help:    "Time taken to generate a chunk summary via AI API",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordWords implements SummaryMetricsRecorder.RecordWords
func (p *PrometheusSummaryMetrics) RecordWords(words int) {
	p.wordsHistogram.Observe(float64(words))
}

// RecordBoundsExceeded implements SummaryMetricsRecorder.RecordBoundsExceeded
func (p *PrometheusSummaryMetrics) RecordBoundsExceeded() {
	p.exceededCounter.Inc()
}

// RecordCompliance implements SummaryMetricsRecorder.RecordCompliance
func (p *PrometheusSummaryMetrics) RecordCompliance(withinBounds bool) {
	if withinBounds {
		p.complianceGauge.Set(1.0)
	} else {
		p.complianceGauge.Set(0.0)
	}
}

// RecordDuration implements SummaryMetricsRecorder.RecordDuration
func (p *PrometheusSummaryMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}
