package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
)

// unmatchedRoute labels requests that hit no registered route, so that
// scanners probing random paths cannot explode label cardinality.
const unmatchedRoute = "unmatched"

type MetricsMiddleware struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewMetricsMiddleware(requestsTotal *prometheus.CounterVec, requestDuration *prometheus.HistogramVec) *MetricsMiddleware {
	return &MetricsMiddleware{
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
	}
}

// CollectHTTPMetrics records request counts by method, route and status, and
// latency by method and route.
func (m *MetricsMiddleware) CollectHTTPMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			method := c.Request().Method

			m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(responseStatus(c, err))).Inc()
			m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// responseStatus is the status the client will see. Errors are rendered by
// the error handler after the middleware chain unwinds, so for a failed
// request the status is derived from the error itself.
func responseStatus(c echo.Context, err error) int {
	if err != nil && !c.Response().Committed {
		code, _ := helpers.StatusFor(err)
		return code
	}
	return c.Response().Status
}
