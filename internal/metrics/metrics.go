package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/AlexZinkM/algo-wallet/internal/model"
)

// Metrics holds all Prometheus collectors for the application.
// It is passed explicitly to the components that record metrics; a nil
// *Metrics is valid and records nothing.
type Metrics struct {
	transactionsReviewedTotal *prometheus.CounterVec
	transactionDecodeErrors   prometheus.Counter
	backupExportsTotal        *prometheus.CounterVec

	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance and registers all collectors.
// If registry is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		transactionsReviewedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_reviewed_total",
				Help: "Total number of transactions reviewed by icon category",
			},
			[]string{"category"},
		),
		transactionDecodeErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transaction_decode_errors_total",
				Help: "Total number of transactions that could not be decoded for review",
			},
		),
		backupExportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backup_exports_total",
				Help: "Total number of backup exports by status",
			},
			[]string{"status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5},
			},
			[]string{"handler", "method", "status"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"handler", "method", "status"},
		),
	}
}

// RecordReview records one reviewed transaction
func (m *Metrics) RecordReview(category model.IconCategory) {
	if m == nil {
		return
	}
	m.transactionsReviewedTotal.WithLabelValues(string(category)).Inc()
}

// RecordDecodeError records a transaction that failed to decode
func (m *Metrics) RecordDecodeError() {
	if m == nil {
		return
	}
	m.transactionDecodeErrors.Inc()
}

// RecordBackupExport records the outcome of a backup export
// ("success", "rate_limited", "file_exists", "invalid_passphrase", "internal")
func (m *Metrics) RecordBackupExport(status string) {
	if m == nil {
		return
	}
	m.backupExportsTotal.WithLabelValues(status).Inc()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(handler, method string, statusCode int, duration float64) {
	if m == nil {
		return
	}
	status := strconv.Itoa(statusCode)
	m.httpRequestDuration.WithLabelValues(handler, method, status).Observe(duration)
	m.httpRequestsTotal.WithLabelValues(handler, method, status).Inc()
}
