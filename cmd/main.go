package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/esdrassantos06/tarevity-notification-core/internal/config"
	"github.com/esdrassantos06/tarevity-notification-core/internal/handler"
	"github.com/esdrassantos06/tarevity-notification-core/internal/health"
	"github.com/esdrassantos06/tarevity-notification-core/internal/infra/repository"
	"github.com/esdrassantos06/tarevity-notification-core/internal/infra/tasksource"
	"github.com/esdrassantos06/tarevity-notification-core/internal/observability"
	"github.com/esdrassantos06/tarevity-notification-core/internal/observability/logging"
	"github.com/esdrassantos06/tarevity-notification-core/internal/observability/metrics"
	"github.com/esdrassantos06/tarevity-notification-core/internal/observability/middleware"
	"github.com/esdrassantos06/tarevity-notification-core/internal/scheduler"
	"github.com/esdrassantos06/tarevity-notification-core/internal/service/reconcile"
	"github.com/esdrassantos06/tarevity-notification-core/internal/service/refresh"
	"github.com/esdrassantos06/tarevity-notification-core/internal/service/urgency"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.Redis.Validate(); err != nil {
		slog.Error("redis configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reconcileMetrics, err := metrics.NewReconcileMetrics()
	if err != nil {
		slog.Error("failed to initialize reconcile metrics", slog.String("error", err.Error()))
		return 1
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	notificationRepo := repository.NewNotificationRepository(redisClient, cfg.Refresh.Retention)
	refreshStateRepo := repository.NewRefreshStateRepository(redisClient, cfg.Refresh.ActiveUserTTL)

	taskSource := tasksource.NewClient(cfg.TasksAPIURL)
	classifier := urgency.NewClassifier(cfg.Location)

	reconcileService := reconcile.NewService(taskSource, notificationRepo, classifier, reconcileMetrics)
	refreshService := refresh.NewService(reconcileService, refreshStateRepo, cfg.Refresh, cfg.Location, reconcileMetrics)

	refreshHandler := handler.NewRefreshHandler(refreshService, cfg.CronSecret)
	notificationHandler := handler.NewNotificationHandler(notificationRepo, cfg.CronSecret)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      logging.Module("notification-core"),
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, cfg.TasksAPIURL, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/notifications", notificationHandler.HandleList)
		v1.POST("/notifications/refresh", refreshHandler.HandleRefresh)
		v1.POST("/notifications/refresh/all", refreshHandler.HandleRefreshAll)
		v1.POST("/notifications/read-all", notificationHandler.HandleMarkAllRead)
		v1.POST("/notifications/:id/read", notificationHandler.HandleMarkRead)
		v1.POST("/notifications/:id/dismiss", notificationHandler.HandleDismiss)
		v1.DELETE("/notifications", notificationHandler.HandleReset)
	}

	// Midnight sweep keeps buckets honest for users who never open the app.
	runner := scheduler.NewRunner(refreshService, cfg.Location, cfg.Refresh.SweepInterval)
	go runner.Run(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Location.String()),
			slog.Duration("throttle_interval", cfg.Refresh.ThrottleInterval),
			slog.Duration("sweep_interval", cfg.Refresh.SweepInterval),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "notification-core"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("notification-core"),
		OTLPEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	})
}
