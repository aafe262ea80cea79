package prometheus

import (
	"time"

	"inventory-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Product metrics
	ProductOperationsCounter prometheus.CounterVec

	// Alert computation metrics
	AlertComputationsCounter prometheus.Counter
	AlertsEmittedCounter     prometheus.Counter
	AlertsPerComputation     prometheus.Histogram
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Product metrics
	ProductOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of product operations",
		},
		[]string{"operation"},
	)

	// Alert computation metrics
	AlertComputationsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_alert_computations_total",
			Help: "Total number of low-stock alert computations",
		},
	)

	AlertsEmittedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_alerts_emitted_total",
			Help: "Total number of low-stock alert rows emitted",
		},
	)

	AlertsPerComputation = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_alerts_per_computation",
			Help:    "Number of alert rows per computation",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation string) {
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAlertComputation records one alert computation and its row count
func RecordAlertComputation(alertCount int) {
	AlertComputationsCounter.Inc()
	AlertsEmittedCounter.Add(float64(alertCount))
	AlertsPerComputation.Observe(float64(alertCount))
}
