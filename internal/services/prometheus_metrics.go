package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsTotal    *prometheus.CounterVec
	transactionsRejected *prometheus.CounterVec
	transactionsDeleted  prometheus.Counter
	listDuration         prometheus.Histogram
	summaryDuration      prometheus.Histogram
	reportDuration       prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_total",
				Help: "Total number of transactions written, by operation and type",
			},
			[]string{"operation", "type"},
		),
		transactionsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_rejected_total",
				Help: "Total number of transaction writes rejected by validation",
			},
			[]string{"operation"},
		),
		transactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_deleted_total",
				Help: "Total number of transactions deleted",
			},
		),
		listDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_list_duration_milliseconds",
				Help:    "Transaction listing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_summary_duration_milliseconds",
				Help:    "Monthly summary build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_report_duration_milliseconds",
				Help:    "Yearly report build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	transactionType := tags["type"]

	switch name {
	case "transaction.created":
		m.transactionsTotal.WithLabelValues("create", transactionType).Inc()
	case "transaction.updated":
		m.transactionsTotal.WithLabelValues("update", transactionType).Inc()
	case "transaction.deleted":
		m.transactionsDeleted.Inc()
	case "transaction.rejected":
		m.transactionsRejected.WithLabelValues(operation).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction.list":
		m.listDuration.Observe(float64(duration.Milliseconds()))
	case "summary.build":
		m.summaryDuration.Observe(float64(duration.Milliseconds()))
	case "report.build":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}
