package main

import (
	"context"
	"os"
	"os/signal"
	"packslip/internal/adapter/http/handlers"
	"packslip/internal/adapter/http/routes"
	"packslip/internal/adapter/persistence/repository"
	"packslip/internal/config"
	"packslip/internal/infrastructure/observability"
	"packslip/internal/infrastructure/pdf"
	"packslip/internal/infrastructure/storage"
	"packslip/internal/usecase"
	"packslip/internal/usecase/interfaces"
	"packslip/pkg/logger"
	"syscall"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Packing Slip Service API
// @version         1.0
// @description     Bulk and single-order packing slip generation with usage analytics.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		panic(err)
	}
	if _, err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.L().Fatal("Failed to startup the application", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(gin.ReleaseMode)

	eventRepo, closeRepo := repository.OpenEventRepositoryWithFallback(ctx, cfg)
	defer func() { _ = closeRepo() }()

	renderer, err := pdf.NewChromeRenderer(pdf.ChromeOptions{
		ExecPath: cfg.Render.ChromePath,
		Timeout:  cfg.GetRenderTimeout(),
	})
	if err != nil {
		return err
	}
	defer renderer.Close()

	var archiveStore interfaces.IArchiveStore
	if cfg.IsArchiveEnabled() {
		store, err := storage.NewMinioArchiveStore(cfg.Archive, cfg.AWS.Region, cfg.GetArchiveURLExpiry())
		if err == nil {
			err = store.EnsureBucket(ctx)
		}
		if err != nil {
			logger.L().Warn("[archive][storage] archive retention disabled", zap.Error(err))
		} else {
			archiveStore = store
		}
	}

	metrics := observability.NewGenerationMetrics()
	eventLogger := usecase.NewEventLogger(eventRepo)

	bulkUseCase := usecase.NewBulkPackingSlipUseCase(renderer, eventLogger, archiveStore, metrics)
	singleUseCase := usecase.NewSingleOrderUseCase(renderer, eventLogger, metrics)
	metricsUseCase := usecase.NewMetricsUseCase(eventRepo)

	router := routes.NewRouter(routes.Dependencies{
		PackingSlips:       handlers.NewPackingSlipHandler(bulkUseCase, singleUseCase),
		Analytics:          handlers.NewAnalyticsHandler(eventLogger, metricsUseCase),
		Prometheus:         metrics.Handler(),
		MetricsKey:         cfg.Security.InternalMetricsKey,
		RateLimitPerMinute: cfg.Security.RateLimitPerMinute,
	})

	return routes.Run(ctx, cfg.Port, router)
}
