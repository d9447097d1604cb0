// Package metrics defines the Prometheus collectors of tq-server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Issue outcomes recorded by TokenIssued.
const (
	OutcomeIssued   = "issued"
	OutcomeExisting = "existing"
	OutcomeRefused  = "refused"
	OutcomeFailed   = "failed"
)

// Metrics groups the collectors. A nil *Metrics records nothing.
type Metrics struct {
	tokensIssued *prometheus.CounterVec
	advances     prometheus.Counter
	resets       prometheus.Counter
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	subscribers  prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		tokensIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tq_tokens_issued_total",
			Help: "Token requests by outcome.",
		}, []string{"outcome"}),
		advances: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tq_serving_advances_total",
			Help: "Serving counter advances.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tq_daily_resets_total",
			Help: "Daily shop resets performed.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tq_grpc_requests_total",
			Help: "Handled gRPC calls by method and status code.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tq_grpc_request_duration_seconds",
			Help:    "gRPC call latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tq_feed_subscribers",
			Help: "Open change feed subscriptions.",
		}),
	}
	reg.MustRegister(m.tokensIssued, m.advances, m.resets, m.requests, m.duration, m.subscribers)
	return m
}

// TokenIssued counts one token request with the given outcome.
func (m *Metrics) TokenIssued(outcome string) {
	if m == nil {
		return
	}
	m.tokensIssued.WithLabelValues(outcome).Inc()
}

// ServingAdvanced counts one serving counter advance.
func (m *Metrics) ServingAdvanced() {
	if m == nil {
		return
	}
	m.advances.Inc()
}

// DailyReset counts one performed daily reset.
func (m *Metrics) DailyReset() {
	if m == nil {
		return
	}
	m.resets.Inc()
}

// Request observes one finished gRPC call.
func (m *Metrics) Request(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, code).Inc()
	m.duration.WithLabelValues(method).Observe(d.Seconds())
}

// Subscribers adds delta to the open subscriptions gauge.
func (m *Metrics) Subscribers(delta int) {
	if m == nil {
		return
	}
	m.subscribers.Add(float64(delta))
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
