package summarizer

import (
	"testing"
	"time"

	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prometheus/client_golang/prometheus"
)

func findMetricFamily(t *testing.T, name string) *io_prometheus_client.MetricFamily {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestNewPrometheusSummaryMetrics_Singleton(t *testing.T) {
	first := NewPrometheusSummaryMetrics()
	second := NewPrometheusSummaryMetrics()

	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestPrometheusSummaryMetrics_RecordWords(t *testing.T) {
	m := NewPrometheusSummaryMetrics()

	before := findMetricFamily(t, "chunk_summary_length_words")
	var beforeCount uint64
	if before != nil {
		beforeCount = before.GetMetric()[0].GetHistogram().GetSampleCount()
	}

	m.RecordWords(55)

	after := findMetricFamily(t, "chunk_summary_length_words")
	require.NotNil(t, after)
	assert.Equal(t, beforeCount+1, after.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestPrometheusSummaryMetrics_RecordBoundsExceeded(t *testing.T) {
	m := NewPrometheusSummaryMetrics()

	before := findMetricFamily(t, "chunk_summary_bounds_exceeded_total")
	var beforeValue float64
	if before != nil {
		beforeValue = before.GetMetric()[0].GetCounter().GetValue()
	}

	m.RecordBoundsExceeded()

	after := findMetricFamily(t, "chunk_summary_bounds_exceeded_total")
	require.NotNil(t, after)
	assert.Equal(t, beforeValue+1, after.GetMetric()[0].GetCounter().GetValue())
}

func TestPrometheusSummaryMetrics_RecordCompliance(t *testing.T) {
	m := NewPrometheusSummaryMetrics()

	m.RecordCompliance(true)
	mf := findMetricFamily(t, "chunk_summary_bounds_compliance_ratio")
	require.NotNil(t, mf)
	assert.Equal(t, 1.0, mf.GetMetric()[0].GetGauge().GetValue())

	m.RecordCompliance(false)
	mf = findMetricFamily(t, "chunk_summary_bounds_compliance_ratio")
	require.NotNil(t, mf)
	assert.Equal(t, 0.0, mf.GetMetric()[0].GetGauge().GetValue())
}

func TestPrometheusSummaryMetrics_RecordDuration(t *testing.T) {
	m := NewPrometheusSummaryMetrics()

	before := findMetricFamily(t, "chunk_summarization_duration_seconds")
	var beforeCount uint64
	if before != nil {
		beforeCount = before.GetMetric()[0].GetHistogram().GetSampleCount()
	}

	m.RecordDuration(750 * time.Millisecond)

	after := findMetricFamily(t, "chunk_summarization_duration_seconds")
	require.NotNil(t, after)
	assert.Equal(t, beforeCount+1, after.GetMetric()[0].GetHistogram().GetSampleCount())
}
