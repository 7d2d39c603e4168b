package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry served on /metrics.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, route and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// QuoteIngestions counts ingestion results by action (created, updated, failed) and outcome.
	QuoteIngestions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quote_ingestions_total", Help: "Quote ingestion results by action and outcome."},
		[]string{"action", "outcome"},
	)
	// PersistenceConflicts counts natural-key conflicts recovered by insert-or-fetch.
	PersistenceConflicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "persistence_conflicts_total", Help: "Uniqueness conflicts recovered during ingestion."},
		[]string{"entity"},
	)

	// CarrierRequests counts outbound carrier calls by carrier, operation and result.
	CarrierRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "carrier_requests_total", Help: "Outbound carrier calls."},
		[]string{"carrier", "operation", "result"},
	)
	// CarrierLatency tracks outbound carrier call latency in seconds, retries included.
	CarrierLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "carrier_request_duration_seconds", Help: "Carrier call duration in seconds.", Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}},
		[]string{"carrier", "operation"},
	)
	// CarrierRetries counts retry attempts after transient upstream failures.
	CarrierRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "carrier_retries_total", Help: "Retries after transient carrier failures."},
		[]string{"carrier", "operation"},
	)

	// AutomationSessions counts automation session transitions (started, success, error, retried).
	AutomationSessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "automation_sessions_total", Help: "Automation session transitions."},
		[]string{"carrier", "event"},
	)
	// EventsPublished counts domain event publication results.
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "events_published_total", Help: "Domain events published by type and status."},
		[]string{"event_type", "status"},
	)
)

// RegisterDefault registers collectors to Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(QuoteIngestions)
		Registry.MustRegister(PersistenceConflicts)
		Registry.MustRegister(CarrierRequests)
		Registry.MustRegister(CarrierLatency)
		Registry.MustRegister(CarrierRetries)
		Registry.MustRegister(AutomationSessions)
		Registry.MustRegister(EventsPublished)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
