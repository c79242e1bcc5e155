// Package metrics provides Prometheus instrumentation for the spark-id
// service.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sparkid",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sparkid",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// IDsGeneratedTotal counts generated ids by mode (single, batch, unique).
	IDsGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sparkid",
			Name:      "ids_generated_total",
			Help:      "Total identifiers generated by mode.",
		},
		[]string{"mode"},
	)

	// GenerateFailuresTotal counts failed generation requests by error code.
	GenerateFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sparkid",
			Name:      "generate_failures_total",
			Help:      "Total failed generation requests by error code.",
		},
		[]string{"code"},
	)

	// ParsesTotal counts parse requests by outcome (ok, invalid).
	ParsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sparkid",
			Name:      "parses_total",
			Help:      "Total parse requests by outcome.",
		},
		[]string{"outcome"},
	)

	// ValidationsTotal counts validate requests by verdict.
	ValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sparkid",
			Name:      "validations_total",
			Help:      "Total validate requests by verdict.",
		},
		[]string{"valid"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		IDsGeneratedTotal,
		GenerateFailuresTotal,
		ParsesTotal,
		ValidationsTotal,
	)
}

// Middleware returns a gin middleware that records request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(), // route pattern, not actual path (avoids cardinality explosion)
		))

		c.Next()

		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusBucket(c.Writer.Status()),
		).Inc()
	}
}

// Handler returns the Prometheus metrics HTTP handler for the /metrics
// endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// statusBucket groups HTTP status codes into buckets (2xx, 3xx, 4xx, 5xx).
func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
