package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/me/gosched/pkg/model"
)

// metricsSet holds the server's Prometheus collectors and their registry.
type metricsSet struct {
	registry *prometheus.Registry

	requestsTotal  *prometheus.CounterVec
	requestLatency prometheus.Histogram
	runsTotal      *prometheus.CounterVec
}

func newMetricsSet() *metricsSet {
	m := &metricsSet{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "gosched_requests_total", Help: "Total HTTP requests"},
			[]string{"status"},
		),
		requestLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{Name: "gosched_request_seconds", Help: "HTTP request latency"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "gosched_runs_total", Help: "Simulation runs by policy"},
			[]string{"policy"},
		),
	}
	m.registry.MustRegister(
		m.requestsTotal,
		m.requestLatency,
		m.runsTotal,
		collectors.NewGoCollector(),
	)
	return m
}

// middleware records request counts by status and end-to-end latency.
func (m *metricsSet) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		m.requestsTotal.WithLabelValues(fmt.Sprint(sw.status)).Inc()
		m.requestLatency.Observe(time.Since(start).Seconds())
	})
}

// countRun records one completed simulation run.
func (m *metricsSet) countRun(policy model.PolicyName) {
	m.runsTotal.WithLabelValues(policy.String()).Inc()
}
