package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"packslip/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		seen, _ = c.Request.Context().Value(logger.RequestIDKey).(string)
		c.Status(http.StatusNoContent)
	})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	})

	t.Run("mints id when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
	})
}

func TestAccessLogAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	r := gin.New()
	r.Use(RequestID(), AccessLog(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"An internal error occurred"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("[http] recovered from panic").Len())
	require.Equal(t, 1, logs.FilterMessage("[http] request").Len())
	entry := logs.FilterMessage("[http] request").All()[0]
	assert.Equal(t, int64(http.StatusInternalServerError), entry.ContextMap()["status"])
	assert.NotEmpty(t, entry.ContextMap()["request_id"])
}

func TestIPRateLimiter(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		l := NewIPRateLimiter(0)
		for i := 0; i < 1000; i++ {
			require.True(t, l.Allow("1.1.1.1"))
		}
	})

	t.Run("per ip burst then refill", func(t *testing.T) {
		now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		l := NewIPRateLimiter(2)
		l.now = func() time.Time { return now }

		assert.True(t, l.Allow("1.1.1.1"))
		assert.True(t, l.Allow("1.1.1.1"))
		assert.False(t, l.Allow("1.1.1.1"))
		assert.True(t, l.Allow("2.2.2.2"))

		now = now.Add(30 * time.Second)
		assert.True(t, l.Allow("1.1.1.1"))
	})

	t.Run("middleware returns 429", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(NewIPRateLimiter(1).Middleware())
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}

func TestRequireMetricsKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(secret string) *gin.Engine {
		r := gin.New()
		r.GET("/m", RequireMetricsKey(secret), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	tests := []struct {
		name   string
		secret string
		target string
		header string
		want   int
	}{
		{name: "secret unset", secret: "", target: "/m?key=anything", want: http.StatusForbidden},
		{name: "missing key", secret: "s3cret", target: "/m", want: http.StatusUnauthorized},
		{name: "wrong key", secret: "s3cret", target: "/m?key=nope", want: http.StatusUnauthorized},
		{name: "query key", secret: "s3cret", target: "/m?key=s3cret", want: http.StatusOK},
		{name: "header key", secret: "s3cret", target: "/m", header: "s3cret", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(HeaderMetricsKey, tt.header)
			}
			w := httptest.NewRecorder()
			build(tt.secret).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
