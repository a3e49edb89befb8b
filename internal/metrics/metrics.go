// Package metrics holds the Prometheus collectors exposed by the web server.
package metrics

import (
	"net/http"
	"time"

	"github.com/iwvelando/boiler-fuel/internal/calculator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "boiler_fuel"

// Metrics groups the collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	calculations    *prometheus.CounterVec
	lookupFailures  *prometheus.CounterVec
	pendingInputs   prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Fuel consumption calculations by fuel.",
		}, []string{"fuel"}),
		lookupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "density_lookup_failures_total",
			Help:      "Density oracle failures by condition.",
		}, []string{"condition"}),
		pendingInputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pending_inputs_total",
			Help:      "Calculations run while a required input was unset.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}

	m.registry.MustRegister(
		m.calculations,
		m.lookupFailures,
		m.pendingInputs,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCalculation records one calculation result.
func (m *Metrics) ObserveCalculation(fuel string, res calculator.Result) {
	m.calculations.WithLabelValues(fuel).Inc()
	if res.ReferenceError != nil {
		m.lookupFailures.WithLabelValues("reference").Inc()
	}
	if res.OperatingError != nil {
		m.lookupFailures.WithLabelValues("operating").Inc()
	}
	if len(res.Pending) > 0 {
		m.pendingInputs.Inc()
	}
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(route, http.StatusText(status)).Observe(elapsed.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
