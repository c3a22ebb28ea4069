package response

import "packslip/internal/usecase"

type SuccessResponse struct {
	Success bool `json:"success"`
}

type InternalMetricsResponse struct {
	Metrics usecase.DashboardMetrics `json:"metrics"`
	Debug   usecase.DebugInfo        `json:"debug"`
}
