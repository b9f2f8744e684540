// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "vote_api"

// Connect attempt results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Metrics struct {
	Registry *prometheus.Registry
	HTTP     *HTTPMetrics
	Store    *StoreMetrics
}

type HTTPMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

type StoreMetrics struct {
	ConnectAttempts *prometheus.CounterVec
	VotesCast       prometheus.Counter
}

// New registers all collectors on a fresh registry.
// Each call is independent, so tests can build as many as they need.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		HTTP: &HTTPMetrics{
			Requests: factory.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: Namespace,
					Name:      "http_requests_total",
					Help:      "Total number of HTTP requests by route and status",
				},
				[]string{"method", "route", "status"},
			),
			Duration: factory.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: Namespace,
					Name:      "http_request_duration_seconds",
					Help:      "Histogram of HTTP request latencies",
					Buckets:   prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
		},
		Store: &StoreMetrics{
			ConnectAttempts: factory.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: Namespace,
					Subsystem: "db",
					Name:      "connect_attempts_total",
					Help:      "Vote Store connection attempts by result",
				},
				[]string{"result"},
			),
			VotesCast: factory.NewCounter(
				prometheus.CounterOpts{
					Namespace: Namespace,
					Name:      "votes_cast_total",
					Help:      "Total number of votes committed to the store",
				},
			),
		},
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Observe records one finished request. Safe on a nil receiver.
func (m *HTTPMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.Duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ConnectAttempt records one acquisition attempt. Safe on a nil receiver.
func (m *StoreMetrics) ConnectAttempt(ok bool) {
	if m == nil {
		return
	}
	result := ResultFailure
	if ok {
		result = ResultSuccess
	}
	m.ConnectAttempts.WithLabelValues(result).Inc()
}

// VoteCast records a committed vote. Safe on a nil receiver.
func (m *StoreMetrics) VoteCast() {
	if m == nil {
		return
	}
	m.VotesCast.Inc()
}
