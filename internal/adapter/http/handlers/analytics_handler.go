package handlers

import (
	"net/http"
	request "packslip/internal/adapter/http/dto/request"
	response "packslip/internal/adapter/http/dto/response"
	"packslip/internal/usecase"
	"packslip/pkg"
	"packslip/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidEventPayload = pkg.NewDomainErrorSimple("INVALID_EVENT_PAYLOAD", "Request body must be a JSON object", http.StatusBadRequest)
	errInvalidEvent        = pkg.NewDomainErrorSimple("INVALID_EVENT", "Invalid or missing event_name", http.StatusBadRequest)
	errMetricsUnavailable  = pkg.NewDomainErrorSimple("METRICS_UNAVAILABLE", "Failed to load metrics", http.StatusInternalServerError)
)

// AnalyticsHandler ingests usage events and serves the internal dashboard.
type AnalyticsHandler struct {
	events  usecase.IEventLogger
	metrics usecase.IMetricsUseCase
}

func NewAnalyticsHandler(events usecase.IEventLogger, metrics usecase.IMetricsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{events: events, metrics: metrics}
}

// TrackEvent godoc
// @Summary      Record a usage event
// @Description  Accepts a flat JSON object with event_name (or legacy event) plus properties.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /events [post]
func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	var payload request.EventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	name, err := usecase.ValidateEventName(payload.Name())
	if err != nil {
		c.JSON(errInvalidEvent.HTTPStatus, errInvalidEvent.ToHTTPError())
		return
	}

	h.events.LogEvent(c.Request.Context(), name, payload.Properties())
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// Telemetry godoc
// @Summary      Forward client telemetry to the service log
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /telemetry [post]
func (h *AnalyticsHandler) Telemetry(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	logger.FromContext(c.Request.Context()).Info("[telemetry]",
		zap.Time("timestamp", time.Now().UTC()),
		zap.Any("payload", payload),
	)
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// GetInternalMetrics godoc
// @Summary      Internal usage dashboard
// @Tags         analytics
// @Produce      json
// @Param        key  query     string  false  "Shared secret (or X-Metrics-Key header)"
// @Success      200  {object}  response.InternalMetricsResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /internal/metrics [get]
func (h *AnalyticsHandler) GetInternalMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	dashboard, err := h.metrics.Dashboard(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[metrics][handler] dashboard failed", zap.Error(err))
		c.JSON(errMetricsUnavailable.HTTPStatus, errMetricsUnavailable.ToHTTPError())
		return
	}
	debug, err := h.metrics.Debug(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[metrics][handler] debug failed", zap.Error(err))
		c.JSON(errMetricsUnavailable.HTTPStatus, errMetricsUnavailable.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.InternalMetricsResponse{Metrics: dashboard, Debug: debug})
}
