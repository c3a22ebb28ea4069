package routes

import (
	"packslip/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPackingSlips = "/packing-slips"
)

func addPackingSlipRoutes(rg *gin.RouterGroup, h *handlers.PackingSlipHandler) {
	slips := rg.Group(PathPackingSlips)
	{
		slips.POST("", h.GenerateSingle)
		slips.POST("/bulk", h.GenerateBulk)
		slips.POST("/bulk/validate", h.InspectBulk)
	}
}
