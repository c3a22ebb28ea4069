package routes

import (
	"context"
	"errors"
	"net/http"
	_ "packslip/docs" // swagger spec
	"packslip/internal/adapter/http/handlers"
	"packslip/internal/adapter/http/middleware"
	"packslip/pkg/logger"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Dependencies are the handlers and settings the router is built from.
type Dependencies struct {
	PackingSlips       *handlers.PackingSlipHandler
	Analytics          *handlers.AnalyticsHandler
	Prometheus         http.Handler
	MetricsKey         string
	RateLimitPerMinute int
}

// NewRouter builds the gin engine with middlewares and every route group.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Prometheus != nil {
		router.GET("/metrics", gin.WrapH(deps.Prometheus))
	}

	limiter := middleware.NewIPRateLimiter(deps.RateLimitPerMinute)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPackingSlipRoutes(v1.Group("", limiter.Middleware()), deps.PackingSlips)
	addAnalyticsRoutes(v1, deps.Analytics, deps.MetricsKey)

	// Path used by the browser client before the API was versioned.
	router.POST("/api/internal-event", deps.Analytics.TrackEvent)

	return router
}

// Run serves router on port until ctx is canceled, then drains in-flight requests.
func Run(ctx context.Context, port int, router http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("[http] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.L().Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(middleware.Recovery())
}
