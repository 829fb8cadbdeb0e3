package metrics

import (
	"net/http"
	"strconv"
	"teenpatti-server/pkg/teenpatti"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registry keeps the exposition free of the default Go collectors
var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "teenpatti",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "teenpatti",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request durations by route and method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	rankLookups = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "teenpatti",
		Name:      "rank_lookups_total",
		Help:      "Total number of hand evaluations by source",
	}, []string{"source"})

	wsSessions = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: "teenpatti",
		Name:      "ws_sessions",
		Help:      "Number of connected websocket sessions",
	})

	_ = promauto.With(registry).NewCounterFunc(prometheus.CounterOpts{
		Namespace: "teenpatti",
		Name:      "rank_fallback_scans_total",
		Help:      "Number of rank lookups that missed the key map and fell back to a linear scan",
	}, func() float64 {
		return float64(teenpatti.FallbackScans())
	})

	_ = promauto.With(registry).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "teenpatti",
		Name:      "rank_table_build_seconds",
		Help:      "How long the ranking table took to build",
	}, func() float64 {
		return teenpatti.BuildDuration().Seconds()
	})
)

// RecordHTTPRequest records a completed HTTP request
func RecordHTTPRequest(route, method string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	httpRequests.WithLabelValues(route, method, status).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordRankLookup counts a hand evaluation by source, i.e., api or ws
func RecordRankLookup(source string) {
	rankLookups.WithLabelValues(source).Inc()
}

// WebsocketConnected increments the session gauge
func WebsocketConnected() {
	wsSessions.Inc()
}

// WebsocketDisconnected decrements the session gauge
func WebsocketDisconnected() {
	wsSessions.Dec()
}

// Handler returns the exposition handler for the private registry
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
