package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	cartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_mutations_total",
			Help: "Cart engine mutations by operation.",
		},
		[]string{"op"},
	)

	ordersPlacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Orders successfully written to the remote store.",
		},
	)

	reconciliationLinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_reconciliation_lines_total",
			Help: "Per-line stock decrement outcomes after order submission.",
		},
		[]string{"outcome"},
	)

	catalogRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_refreshes_total",
			Help: "Catalog snapshot refreshes by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func IncCartMutation(op string) {
	cartMutationsTotal.WithLabelValues(op).Inc()
}

func IncOrderPlaced() {
	ordersPlacedTotal.Inc()
}

func IncReconciliationLine(outcome string) {
	reconciliationLinesTotal.WithLabelValues(outcome).Inc()
}

func IncCatalogRefresh(outcome string) {
	catalogRefreshesTotal.WithLabelValues(outcome).Inc()
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		// r.Pattern carries the registered route after ServeMux dispatch,
		// keeping label cardinality bounded.
		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}

		duration := time.Since(start)

		httpRequestsTotal.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, path).Inc()
		httpRequestsDuration.WithLabelValues(r.Method, path).Observe(duration.Seconds())
	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
