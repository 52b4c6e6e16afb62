package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MediaUploads counts stored media blobs by storage backend and outcome.
var MediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "folio_media_uploads_total",
	Help: "Media blobs handed to a storage backend.",
}, []string{"backend", "outcome"})

// MirrorSyncRuns counts remote-mirror synchronization attempts by operation
// (pull or push) and outcome. Failures here never surface to clients.
var MirrorSyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "folio_mirror_sync_runs_total",
	Help: "Remote mirror pull/push cycles.",
}, []string{"op", "outcome"})

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "folio_redis_errors_total",
	Help: "Redis command errors.",
}, []string{"command"})

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
