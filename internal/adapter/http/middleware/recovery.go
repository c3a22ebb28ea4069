package middleware

import (
	"net/http"
	"packslip/pkg"
	"packslip/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).Error("[http] recovered from panic", zap.Any("panic", recovered), zap.Stack("stack"))
		c.AbortWithStatusJSON(errInternal.HTTPStatus, errInternal.ToHTTPError())
	})
}
