package middleware

import (
	"packslip/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog replaces gin.Logger with one structured line per request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		log := logger.FromContext(c.Request.Context())
		switch {
		case c.Writer.Status() >= 500:
			log.Error("[http] request", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("[http] request", fields...)
		default:
			log.Info("[http] request", fields...)
		}
	}
}
