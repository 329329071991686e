// Package metrics holds the Prometheus collectors of the service. Collectors
// live on a private registry so tests can build as many instances as they
// need without clashing on the global one.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shop"

// Metrics groups the collectors exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	UsersRegistered prometheus.Counter
	OrdersCommitted *prometheus.CounterVec
	OrdersExpired   prometheus.Counter
}

// New registers the HTTP, domain and Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"method", "route"}),
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Users persisted by committed transactions.",
		}),
		OrdersCommitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_committed_total",
			Help:      "Order writes persisted by committed transactions, by resulting status.",
		}, []string{"status"}),
		OrdersExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_expired_total",
			Help:      "Unpaid orders cancelled by the expiry job.",
		}),
	}

	m.registry.MustRegister(
		m.Requests,
		m.LatencyMS,
		m.UsersRegistered,
		m.OrdersCommitted,
		m.OrdersExpired,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(method, route).Observe(float64(elapsed.Milliseconds()))
}

// UserRegistered counts one newly persisted user.
func (m *Metrics) UserRegistered() {
	m.UsersRegistered.Inc()
}

// OrderCommitted counts one committed order save under its status label.
func (m *Metrics) OrderCommitted(status string) {
	m.OrdersCommitted.WithLabelValues(status).Inc()
}

// ObserveExpired adds n orders cancelled by the expiry job.
func (m *Metrics) ObserveExpired(n int) {
	m.OrdersExpired.Add(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
