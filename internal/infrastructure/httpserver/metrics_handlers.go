package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	uploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexluc",
			Name:      "image_uploads_total",
			Help:      "Image uploads by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexluc",
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lexluc",
			Name:      "http_request_duration_seconds",
			Help:      "The HTTP request latencies in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestDuration)
	prometheus.MustRegister(uploadsTotal)
}

// GetRequestsTotal returns the requests total metric for middleware use
func GetRequestsTotal() *prometheus.CounterVec {
	return requestsTotal
}

// GetRequestDuration returns the request duration metric for middleware use
func GetRequestDuration() *prometheus.HistogramVec {
	return requestDuration
}

// LogMetricsInitialization logs that metrics have been initialized
func (s *Server) LogMetricsInitialization() {
	if s.logger != nil {
		s.logger.Info("Prometheus metrics initialized and registered")
		s.logger.WithFields(map[string]any{
			"lexluc_http_requests_total":   "Counter for HTTP requests by method, endpoint, status",
			"lexluc_http_request_duration": "Histogram for HTTP request duration by method, endpoint",
			"lexluc_image_uploads_total":   "Counter for image uploads by kind, outcome",
			"metrics_endpoint":             "/metrics",
		}).Debug("Available Prometheus metrics")
	}
}

// metricsEndpoint wraps the metrics handler with logging
func (s *Server) metricsEndpoint(c echo.Context) error {
	if s.logger != nil {
		s.logger.Debug("Serving Prometheus metrics")
	}
	promhttp.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}
