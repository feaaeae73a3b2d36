package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis errors by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "warbler_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// TimelineQueries counts home timeline assemblies by viewer kind.
var TimelineQueries = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "warbler_timeline_queries_total",
	Help: "Total number of home timeline assemblies",
}, []string{"viewer"})

// InitMetrics creates the Prometheus middleware for request metrics.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler that records request metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
