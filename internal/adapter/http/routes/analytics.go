package routes

import (
	"packslip/internal/adapter/http/handlers"
	"packslip/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathEvents          = "/events"
	PathTelemetry       = "/telemetry"
	PathInternalMetrics = "/internal/metrics"
)

func addAnalyticsRoutes(rg *gin.RouterGroup, h *handlers.AnalyticsHandler, metricsKey string) {
	rg.POST(PathEvents, h.TrackEvent)
	rg.POST(PathTelemetry, h.Telemetry)
	rg.GET(PathInternalMetrics, middleware.RequireMetricsKey(metricsKey), h.GetInternalMetrics)
}
