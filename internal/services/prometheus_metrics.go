package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportRequests            *prometheus.CounterVec
	reportDuration            prometheus.Histogram
	rollupRuns                *prometheus.CounterVec
	rollupDuration            prometheus.Histogram
	rollupRowsUpserted        prometheus.Gauge
	ingestBatches             *prometheus.CounterVec
	ingestDuration            prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		reportRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_requests_total",
				Help: "Total number of report requests by report type and status",
			},
			[]string{"report", "status"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		rollupRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollup_runs_total",
				Help: "Total number of daily rollup runs by status",
			},
			[]string{"status"},
		),
		rollupDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rollup_run_duration_milliseconds",
				Help:    "Daily rollup run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		rollupRowsUpserted: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "rollup_rows_upserted",
				Help: "Number of summary rows upserted by the last rollup run",
			},
		),
		ingestBatches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingest_batches_total",
				Help: "Total number of sales record ingest batches by status",
			},
			[]string{"status"},
		),
		ingestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ingest_batch_duration_milliseconds",
				Help:    "Sales record batch ingest duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "report_request":
		m.reportRequests.WithLabelValues(tags["report"], tags["status"]).Inc()
	case "rollup_run":
		m.rollupRuns.WithLabelValues(tags["status"]).Inc()
	case "ingest_batch":
		m.ingestBatches.WithLabelValues(tags["status"]).Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report_generation":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	case "rollup_run":
		m.rollupDuration.Observe(float64(duration.Milliseconds()))
	case "ingest_batch":
		m.ingestDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "rollup_rows_upserted" {
		m.rollupRowsUpserted.Set(value)
	}
}
