package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leasedesk_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "leasedesk_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route"})

	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leasedesk_workflow_operations_total",
		Help: "Lease workflow operations, labeled by outcome kind",
	}, []string{"operation", "outcome"})

	lockWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "leasedesk_row_lock_wait_seconds",
		Help:    "Time spent acquiring workflow row locks",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"table"})
)

// Operation counts a workflow operation by its outcome kind ("ok", "already_resolved", ...).
func Operation(op, outcome string) {
	transitionsTotal.WithLabelValues(op, outcome).Inc()
}

// LockWait records how long a SELECT ... FOR UPDATE on table blocked.
func LockWait(table string, d time.Duration) {
	lockWait.WithLabelValues(table).Observe(d.Seconds())
}

// Middleware records request count and latency per chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
