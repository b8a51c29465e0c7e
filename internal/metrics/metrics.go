// Package metrics содержит счётчики Prometheus дашборда.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Queries         *prometheus.CounterVec
	QueryResults    *prometheus.HistogramVec
	StatusToggles   *prometheus.CounterVec
	CacheLookups    *prometheus.CounterVec
}

// New создаёт метрики и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "path"},
		),
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_queries_total",
				Help: "Total dashboard queries by kind",
			},
			[]string{"kind"},
		),
		QueryResults: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_query_results",
				Help:    "Number of records returned by a dashboard query",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
			[]string{"kind"},
		),
		StatusToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_plan_status_toggles_total",
				Help: "Plan status toggles by resulting status",
			},
			[]string{"status"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_cache_lookups_total",
				Help: "Result cache lookups by outcome",
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.Queries,
		m.QueryResults,
		m.StatusToggles,
		m.CacheLookups,
	)
	return m
}

// ObserveQuery учитывает запрос вида kind, вернувший n записей.
func (m *Metrics) ObserveQuery(kind string, n int) {
	m.Queries.WithLabelValues(kind).Inc()
	m.QueryResults.WithLabelValues(kind).Observe(float64(n))
}

// Handler отдаёт метрики из g в формате Prometheus.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
