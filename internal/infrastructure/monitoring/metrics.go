package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for reconciliation metrics.
const (
	ResultConverged = "converged"
	ResultDegraded  = "degraded"
)

// Metrics holds all Prometheus metrics for the daemon.
type Metrics struct {
	// Reconciliation metrics
	ReconciliationsTotal *prometheus.CounterVec
	ReconcileAttempts    prometheus.Histogram
	ReconcileDuration    prometheus.Histogram
	ConstraintsDetected  prometheus.Counter

	// Activation metrics
	ActivationsTotal *prometheus.CounterVec

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// WebSocket metrics
	WSSubscribers prometheus.Gauge
	WSEvents      prometheus.Counter

	// System metrics
	Uptime prometheus.GaugeFunc
}

// NewMetrics creates a metrics collector registered on reg; a nil reg uses
// the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	startTime := time.Now()

	return &Metrics{
		ReconciliationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridplane_reconciliations_total",
				Help: "Total reconciliation calls by result",
			},
			[]string{"result"},
		),
		ReconcileAttempts: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gridplane_reconcile_attempts",
				Help:    "Correction-loop attempts per reconciliation",
				Buckets: []float64{1, 2, 3, 4, 5, 6},
			},
		),
		ReconcileDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gridplane_reconcile_duration_seconds",
				Help:    "Wall-clock duration of reconciliation calls",
				Buckets: []float64{.01, .025, .05, .1, .2, .3, .5, 1},
			},
		),
		ConstraintsDetected: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "gridplane_constraint_floors_total",
				Help: "Reconciliations that hit an app-enforced minimum size",
			},
		),

		ActivationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridplane_activations_total",
				Help: "Window activation calls by result",
			},
			[]string{"result"},
		),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridplane_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gridplane_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),

		WSSubscribers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "gridplane_ws_subscribers",
				Help: "Connected WebSocket subscribers",
			},
		),
		WSEvents: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "gridplane_ws_events_total",
				Help: "Events fanned out to WebSocket subscribers",
			},
		),

		// Computed at scrape time; no background refresher to stop when a
		// per-server registry goes away.
		Uptime: factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "gridplane_uptime_seconds",
				Help: "Daemon uptime in seconds",
			},
			func() float64 { return time.Since(startTime).Seconds() },
		),
	}
}

// RecordReconciliation records one reconciliation call.
func (m *Metrics) RecordReconciliation(converged, constraint bool, attempts int, duration time.Duration) {
	result := ResultDegraded
	if converged {
		result = ResultConverged
	}
	m.ReconciliationsTotal.WithLabelValues(result).Inc()
	m.ReconcileAttempts.Observe(float64(attempts))
	m.ReconcileDuration.Observe(duration.Seconds())
	if constraint {
		m.ConstraintsDetected.Inc()
	}
}

// RecordActivation records one activation call.
func (m *Metrics) RecordActivation(ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.ActivationsTotal.WithLabelValues(result).Inc()
}

// RecordHTTPRequest records one HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
