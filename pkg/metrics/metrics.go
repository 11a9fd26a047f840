package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
	backendRequests      *prometheus.CounterVec
	backendDuration      *prometheus.HistogramVec
	bookingSubmissions   *prometheus.CounterVec
	historyWriteFailures prometheus.Counter
}

// New регистрирует метрики в reg. Имя сервиса используется как namespace.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		backendRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "backend_requests_total",
			Help:      "Total number of requests to the catalog/order backend",
		}, []string{"endpoint", "outcome"}),

		backendDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of requests to the catalog/order backend",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),

		bookingSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "booking_submissions_total",
			Help:      "Booking submissions by booking type and outcome",
		}, []string{"booking_type", "outcome"}),

		historyWriteFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "booking_history_write_failures_total",
			Help:      "Failed best-effort writes to the local booking history",
		}),
	}
}

// ObserveHTTPRequest фиксирует входящий HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBackendRequest фиксирует запрос к backend API
func (m *Metrics) ObserveBackendRequest(endpoint, outcome string, duration time.Duration) {
	m.backendRequests.WithLabelValues(endpoint, outcome).Inc()
	m.backendDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordSubmission фиксирует результат отправки бронирования
func (m *Metrics) RecordSubmission(bookingType, outcome string) {
	m.bookingSubmissions.WithLabelValues(bookingType, outcome).Inc()
}

// RecordHistoryWriteFailure фиксирует неудачную запись в локальную историю
func (m *Metrics) RecordHistoryWriteFailure() {
	m.historyWriteFailures.Inc()
}
