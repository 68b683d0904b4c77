package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/tair/ims-admin/internal/app"
	"github.com/tair/ims-admin/internal/seed"
	"github.com/tair/ims-admin/kafka"
	"github.com/tair/ims-admin/pkg/config"
	"github.com/tair/ims-admin/pkg/database"
	"github.com/tair/ims-admin/pkg/logger"
	"github.com/tair/ims-admin/pkg/middleware"
	"github.com/tair/ims-admin/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	level := logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting IMS backend")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint, cfg.TracingEnabled)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	db = database.SetLogLevel(db, level)

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}

	if err := app.Migrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	if cfg.SeedOnStart {
		if err := seed.Run(context.Background(), db); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	publisher := newPublisher(cfg)
	redisClient := newRedisClient(cfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize handlers with Wire DI
	handlers, err := app.InitializeHandlers(db, publisher, cfg, reg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	router := app.NewRouter(handlers, app.RouterConfig{
		Middleware:  middleware.DefaultConfig(middleware.NewHTTPMetrics(reg), cfg.RequestTimeout),
		RateLimiter: middleware.NewRateLimiter(redisClient, cfg.RateLimitPerMinute, time.Minute, cfg.TrustProxyHeaders),
		Gatherer:    reg,
		UploadDir:   cfg.UploadDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if err := publisher.Close(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close event publisher")
	}
	if redisClient != nil {
		redisClient.Close()
	}
	if err := sqlDB.Close(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close database")
	}
	if err := tracing.Shutdown(ctx, tp); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
	}

	logger.Logger.Info().Msg("Server stopped")
}

// newPublisher connects to Kafka when brokers are configured
func newPublisher(cfg *config.Config) kafka.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, change events disabled")
		return kafka.NoopPublisher{}
	}

	pub, err := kafka.NewPublisher(cfg.KafkaBrokers)
	if err != nil {
		logger.Logger.Warn().Err(err).Strs("brokers", cfg.KafkaBrokers).Msg("Kafka unavailable, change events disabled")
		return kafka.NoopPublisher{}
	}
	return pub
}

// newRedisClient returns nil when Redis is not configured or not reachable,
// which turns rate limiting off.
func newRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		logger.Logger.Info().Msg("REDIS_ADDR not set, rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, rate limiting disabled")
		client.Close()
		return nil
	}

	logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")
	return client
}
