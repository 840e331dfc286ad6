package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetricsCollector tracks mediator traffic: every solve command and
// catalog query that passes through the bus.
type RequestMetricsCollector struct {
	requestDuration  *prometheus.HistogramVec
	requestsTotal    *prometheus.CounterVec
	requestsInFlight *prometheus.GaugeVec
}

// NewRequestMetricsCollector creates a new request metrics collector
func NewRequestMetricsCollector() *RequestMetricsCollector {
	return &RequestMetricsCollector{
		// Solves dominate the upper buckets; catalog queries stay in the millisecond range
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "mediator",
				Name:      "request_duration_seconds",
				Help:      "Time spent handling a mediator request",
				Buckets:   []float64{0.0005, 0.005, 0.025, 0.1, 0.5, 2.5, 10, 60},
			},
			[]string{"request", "kind", "outcome"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "mediator",
				Name:      "requests_total",
				Help:      "Mediator requests handled, by request type and outcome",
			},
			[]string{"request", "kind", "outcome"},
		),
		requestsInFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "mediator",
				Name:      "requests_in_flight",
				Help:      "Mediator requests currently being handled",
			},
			[]string{"kind"},
		),
	}
}

// Register registers the request metrics with the Prometheus registry
func (c *RequestMetricsCollector) Register() error {
	return register(c.requestDuration, c.requestsTotal, c.requestsInFlight)
}

// requestKind classifies a request name as a command or a query
func requestKind(requestName string) string {
	switch {
	case strings.HasSuffix(requestName, "Command"):
		return "command"
	case strings.HasSuffix(requestName, "Query"):
		return "query"
	default:
		return "other"
	}
}

func (c *RequestMetricsCollector) started(requestName string) {
	c.requestsInFlight.WithLabelValues(requestKind(requestName)).Inc()
}

// finished records the outcome of one request and releases its in-flight slot
func (c *RequestMetricsCollector) finished(requestName string, seconds float64, err error) {
	kind := requestKind(requestName)
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}

	c.requestsInFlight.WithLabelValues(kind).Dec()
	c.requestDuration.WithLabelValues(requestName, kind, outcome).Observe(seconds)
	c.requestsTotal.WithLabelValues(requestName, kind, outcome).Inc()
}
