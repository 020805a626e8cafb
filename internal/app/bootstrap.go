package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/wb_catalog/config"
	cachemem "github.com/Gunvolt24/wb_catalog/internal/cache/memory"
	"github.com/Gunvolt24/wb_catalog/internal/kafka"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
	"github.com/Gunvolt24/wb_catalog/internal/repo/postgres"
	rest "github.com/Gunvolt24/wb_catalog/internal/transport/http"
	"github.com/Gunvolt24/wb_catalog/internal/usecase"
	"github.com/Gunvolt24/wb_catalog/pkg/fulfillment"
	"github.com/Gunvolt24/wb_catalog/pkg/logger"
	"github.com/Gunvolt24/wb_catalog/pkg/metrics"
	"github.com/Gunvolt24/wb_catalog/pkg/sku"
	"github.com/Gunvolt24/wb_catalog/pkg/telemetry"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, метрики, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP API
	MetricsServer   *http.Server          // отдельный /metrics; nil — выключен
	KafkaConsumer   ports.MessageConsumer // консьюмер товаров
	gracefulTimeout time.Duration         // время ожидания завершения серверов
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newMetricsServer — сервер только с /metrics; пустой addr → nil.
func newMetricsServer(addr string, readHeaderTimeout time.Duration) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			_ = cleanupLogger()
			return nil, func() {}, err
		}
		logg.Infof(ctx, "postgres migrations applied")
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := telemetry.Shutdown(telemetry.Noop)
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
			otelServiceName = cfg.Tracing.ServiceName
		}
	}

	// Доменный слой.
	productCache := cachemem.NewProductCache(cfg.Cache.Capacity, cfg.Cache.TTL)
	productRepo := postgres.NewProductRepository(pool)
	merchantRepo := postgres.NewMerchantRepository(pool)
	skuService := usecase.NewSKUService(
		sku.NewValidator(fulfillment.Detector{}),
		merchantRepo,
		productRepo,
		logg,
		cfg.SKU.MaxLength,
	)
	productService := usecase.NewProductService(productRepo, productCache, logg, skuService)

	if n := cfg.Cache.WarmUpN; n > 0 {
		if err := productService.WarmUpCache(ctx, n); err != nil {
			logg.Warnf(ctx, "warm-up cache failed: %v", err)
		}
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	httpHandler := rest.NewHandler(productService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	kafkaCfg := kafka.ConsumerConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.Topic,
		StartOffset:    cfg.Kafka.StartOffset,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	}
	consumer := kafka.NewConsumer(&kafkaCfg, productService, logg)

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   newMetricsServer(cfg.Metrics.Addr, cfg.HTTP.ReadHeaderTimeout),
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}
