package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Результаты поиска снапшота в кеше
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Metrics набор prometheus метрик сервиса с собственным реестром
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingSubmissions  *prometheus.CounterVec
	snapshotLookups     *prometheus.CounterVec
	blocksCreated       prometheus.Counter
	backendDuration     *prometheus.HistogramVec
}

// New создает метрики с префиксом по имени сервиса
func New(serviceName string) *Metrics {
	namespace := sanitize(serviceName)
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		bookingSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_submissions_total",
				Help:      "Booking submissions by outcome",
			},
			[]string{"outcome"},
		),
		snapshotLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "slot_snapshot_lookups_total",
				Help:      "Booked-interval snapshot cache lookups",
			},
			[]string{"result"},
		),
		blocksCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "slot_blocks_created_total",
				Help:      "Owner maintenance blocks created",
			},
		),
		backendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "venue_backend_request_duration_seconds",
				Help:      "Booking backend call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "result"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingSubmissions,
		m.snapshotLookups,
		m.blocksCreated,
		m.backendDuration,
	)

	return m
}

// Handler http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordBookingSubmission(outcome string) {
	m.bookingSubmissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordSnapshotLookup(result string) {
	m.snapshotLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordBlockCreated() {
	m.blocksCreated.Inc()
}

func (m *Metrics) RecordBackendRequest(operation, result string, duration time.Duration) {
	m.backendDuration.WithLabelValues(operation, result).Observe(duration.Seconds())
}

func sanitize(name string) string {
	replacer := strings.NewReplacer("-", "_", ".", "_", " ", "_")
	return strings.ToLower(replacer.Replace(name))
}
