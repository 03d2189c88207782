package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricLedgerOperation  = "ledger_operation"
	MetricTransfersTotal   = "transfers_total"
	MetricBatchTask        = "batch_task"
	MetricBatchTimeout     = "batch_timeout"
	MetricTransferDuration = "transfer_duration"
	MetricBatchDuration    = "batch_duration"
	MetricTransferAmount   = "transfer_amount"
	MetricAccounts         = "accounts"
)

type PrometheusMetrics struct {
	operationsTotal  *prometheus.CounterVec
	transfersTotal   *prometheus.CounterVec
	batchTasksTotal  *prometheus.CounterVec
	batchTimeouts    prometheus.Counter
	transferDuration prometheus.Histogram
	batchDuration    prometheus.Histogram
	transferAmount   prometheus.Histogram
	accounts         *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the ledger collectors on reg under namespace.
// Pass a private registry in tests so runs do not collide.
func NewPrometheusMetrics(namespace string, reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of ledger operations by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		transfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transfers_total",
				Help:      "Total number of transfers processed",
			},
			[]string{"status"},
		),
		batchTasksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batch_tasks_total",
				Help:      "Total number of batch tasks by final status",
			},
			[]string{"status"},
		),
		batchTimeouts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batch_timeouts_total",
				Help:      "Total number of batches that hit their timeout",
			},
		),
		transferDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transfer_duration_seconds",
				Help:      "Transfer duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		batchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "batch_duration_seconds",
				Help:      "Batch run duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transfer_amount",
				Help:      "Transfer amount in base currency units",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		accounts: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "accounts",
				Help:      "Current number of accounts by type",
			},
			[]string{"type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricLedgerOperation:
		if operation := tags["operation"]; operation != "" && status != "" {
			m.operationsTotal.WithLabelValues(operation, status).Inc()
		}
	case MetricTransfersTotal:
		if status != "" {
			m.transfersTotal.WithLabelValues(status).Inc()
		}
	case MetricBatchTask:
		if status != "" {
			m.batchTasksTotal.WithLabelValues(status).Inc()
		}
	case MetricBatchTimeout:
		m.batchTimeouts.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricTransferDuration:
		m.transferDuration.Observe(duration.Seconds())
	case MetricBatchDuration:
		m.batchDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricAccounts:
		if accountType := tags["type"]; accountType != "" {
			m.accounts.WithLabelValues(accountType).Set(value)
		}
	}
}

// ObserveValue adds value to the named histogram.
func (m *PrometheusMetrics) ObserveValue(name string, value float64) {
	switch name {
	case MetricTransferAmount:
		m.transferAmount.Observe(value)
	}
}

// NoopMetrics discards everything. It is used when metrics are disabled.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
func (NoopMetrics) ObserveValue(string, float64) {}
