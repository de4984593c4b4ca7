package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trigueirabraids/studio-platform/internal/api/router"
	"github.com/trigueirabraids/studio-platform/internal/app/bootstrap"
	"github.com/trigueirabraids/studio-platform/internal/auth"
	"github.com/trigueirabraids/studio-platform/internal/booking"
	appconfig "github.com/trigueirabraids/studio-platform/internal/config"
	"github.com/trigueirabraids/studio-platform/internal/copy"
	"github.com/trigueirabraids/studio-platform/internal/http/handlers"
	"github.com/trigueirabraids/studio-platform/internal/observability/metrics"
	"github.com/trigueirabraids/studio-platform/internal/studio"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

func main() {
	// Load .env in development; ignored when absent
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info("starting studio-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"studio", cfg.StudioName,
	)

	ctx := context.Background()

	redisClient, err := bootstrap.BuildRedisClient(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	store := studio.NewSnapshotStore(redisClient, logger)
	store.SetSettingsDefaults(studio.Settings{
		DefaultPrice:    cfg.DefaultPrice,
		DefaultDuration: cfg.DefaultDurationMinutes,
	})
	state := studio.NewState(store)
	state.Hydrate(ctx)

	clock, err := booking.NewClock(cfg.StudioTimezone)
	if err != nil {
		logger.Error("failed to load studio time zone", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bookingMetrics := metrics.NewBookingMetrics(registry)
	copyMetrics := metrics.NewCopyMetrics(registry)

	drafter := bootstrap.BuildDrafter(ctx, cfg, logger)
	template := copy.NewTemplateDrafter(cfg.StudioName, cfg.BraiderName)
	bookingService := booking.NewService(state, clock, bookingMetrics, logger)
	gate := auth.NewGate(auth.NewStaticVerifier(cfg.AdminUsername, cfg.AdminPassword), store, logger)

	routerCfg := &router.Config{
		Logger:             logger,
		AuthHandler:        auth.NewHandler(gate, logger),
		AuthGate:           gate,
		BookingHandler:     booking.NewHandler(bookingService, drafter, template, copyMetrics, logger),
		AdminDashboard:     handlers.NewAdminDashboardHandler(state, clock, registry, logger),
		AdminClients:       handlers.NewAdminClientsHandler(state, drafter, copyMetrics, logger),
		AdminSchedule:      handlers.NewAdminScheduleHandler(state, logger),
		AdminFinance:       handlers.NewAdminFinanceHandler(state, logger),
		AdminTasks:         handlers.NewAdminTasksHandler(state, logger),
		AdminSettings:      handlers.NewAdminSettingsHandler(state, logger),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		PublicRateLimit:    5,
		PublicRateBurst:    10,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
