// Package metrics provides Prometheus metrics for the service.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"protoparts/internal/domain"
)

const namespace = "ppm"

var (
	// HTTPRequestsTotal tracks handled requests by route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of handled HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestDuration tracks request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// LifecycleTransitions tracks entities created, scrapped and reactivated
	LifecycleTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lifecycle_transitions_total",
			Help:      "Total number of entity lifecycle transitions",
		},
		[]string{"entity", "transition"},
	)
)

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// Middleware records request count and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// CountTransitions registers after-hooks counting the lifecycle of one entity.
func CountTransitions[T any](hooks *domain.HookRegistry[T], entity string) {
	for event, name := range map[domain.HookEvent]string{
		domain.AfterCreate:     "create",
		domain.AfterScrap:      "scrap",
		domain.AfterReactivate: "reactivate",
	} {
		counter := LifecycleTransitions.WithLabelValues(entity, name)
		hooks.On(event, func(context.Context, T) error {
			counter.Inc()
			return nil
		})
	}
}

// PoolStats is the subset of connection pool statistics exported as gauges.
type PoolStats func() (acquired, idle, total int32)

// RegisterPool exports connection pool gauges. Call once per process.
func RegisterPool(stats PoolStats) {
	gauge := func(name, help string, pick func(acquired, idle, total int32) int32) {
		promauto.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      name,
			Help:      help,
		}, func() float64 {
			return float64(pick(stats()))
		})
	}
	gauge("acquired_conns", "Connections currently in use", func(a, _, _ int32) int32 { return a })
	gauge("idle_conns", "Idle connections", func(_, i, _ int32) int32 { return i })
	gauge("total_conns", "Open connections", func(_, _, t int32) int32 { return t })
}
