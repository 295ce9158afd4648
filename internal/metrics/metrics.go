// Package metrics provides Prometheus observability metrics for the backend.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the custom prometheus registry for the application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// RequestsTotal counts handled HTTP requests by method, route and status.
var RequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "backend",
	Name:      "http_requests_total",
	Help:      "Total HTTP requests handled, by method, route and status code",
}, []string{"method", "route", "status"})

// RequestDurationSeconds tracks the time spent handling HTTP requests.
var RequestDurationSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "backend",
	Name:      "http_request_duration_seconds",
	Help:      "Time taken to handle HTTP requests, by method and route",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
}, []string{"method", "route"})

// PlanejamentoSavesTotal counts accepted planning-matrix batch saves.
var PlanejamentoSavesTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "backend",
	Name:      "planejamento_saves_total",
	Help:      "Total planning matrix batch saves that were committed",
})

// Middleware records request count and duration for every handled request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDurationSeconds.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry for scraping.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
