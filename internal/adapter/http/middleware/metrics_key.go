package middleware

import (
	"crypto/subtle"
	"net/http"
	"packslip/pkg"

	"github.com/gin-gonic/gin"
)

const HeaderMetricsKey = "X-Metrics-Key"

var (
	errMetricsDisabled = pkg.NewDomainErrorSimple("FORBIDDEN", "Internal metrics are disabled", http.StatusForbidden)
	errMetricsAuth     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
)

// RequireMetricsKey guards the internal dashboard with a shared secret passed
// as the key query parameter or the X-Metrics-Key header. An empty secret
// locks the endpoint for everyone.
func RequireMetricsKey(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(errMetricsDisabled.HTTPStatus, errMetricsDisabled.ToHTTPError())
			return
		}

		provided := c.Query("key")
		if provided == "" {
			provided = c.GetHeader(HeaderMetricsKey)
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(errMetricsAuth.HTTPStatus, errMetricsAuth.ToHTTPError())
			return
		}
		c.Next()
	}
}
