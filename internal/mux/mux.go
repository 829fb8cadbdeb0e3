package mux

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"teenpatti-server/internal/config"
	"teenpatti-server/internal/metrics"
	"time"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
	}

	this.Router.Use(this.metricsMiddleware)

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/deck").Handler(this.getDeck())
		r.Methods(http.MethodGet).Path("/metrics").Handler(metrics.Handler())

		r.Methods(http.MethodPost).Path("/api/rank").Handler(this.postRank())
		r.Path("/api/rank").Handler(this.rankMethodNotAllowed())
		r.Methods(http.MethodGet).Path("/api/deal").Handler(this.getDeal())
		r.Methods(http.MethodGet).Path("/api/ws").Handler(this.getWS())
	}

	// history endpoints require a configured database
	if config.Instance().HistoryEnabled() {
		r := this.Router
		r.Methods(http.MethodGet).Path("/api/history").Handler(this.getHistory())
		r.Methods(http.MethodGet).Path("/api/history/{id:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Handler(this.getHistoryID())
	}

	return this
}

// responseWriter captures the status code a handler writes
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack keeps websocket upgrades working behind the middleware wrapper
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}

	return hijacker.Hijack()
}

func (m *Mux) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if template, err := gmux.CurrentRoute(r).GetPathTemplate(); err == nil {
			route = template
		}

		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		metrics.RecordHTTPRequest(route, r.Method, wrapped.statusCode, time.Since(start))
	})
}
