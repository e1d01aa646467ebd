package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesdash/internal/config"
	"salesdash/internal/database"
	"salesdash/internal/documentstore"
	"salesdash/internal/handlers"
	"salesdash/internal/middleware"
	"salesdash/internal/repositories"
	"salesdash/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := documentstore.New(connectCtx, &cfg.Mongo)
	connectCancel()
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		_ = store.Close(closeCtx)
	}()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.EnsureIndexes(indexCtx); err != nil {
		slog.Warn("document store index creation failed", "error", err)
	}
	indexCancel()

	// Repositories
	salesRecordRepo := repositories.NewSalesRecordRepository(store.Collection(documentstore.SalesRecordsCollection))
	orderRepo := repositories.NewOrderRepository(db.DB)
	storeRepo := repositories.NewStoreRepository(db.DB)
	summaryRepo := repositories.NewDailySalesSummaryRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(cfg.Auth, tokenService, metrics)
	reportService := services.NewReportService(salesRecordRepo, summaryRepo, metrics)
	rollupService := services.NewRollupService(orderRepo, storeRepo, summaryRepo, cfg.Scheduler, metrics)
	ingestService := services.NewIngestService(salesRecordRepo, metrics)

	// Handlers
	reportHandler := handlers.NewReportHandler(reportService)
	ingestHandler := handlers.NewIngestHandler(ingestService)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthCheckHandler(db, store)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", authHandler.Login)

	reports := v1.Group("/reports", middleware.RequireAuth(tokenService))
	reports.GET("/sales", reportHandler.GetSalesReport)
	reports.GET("/daily", reportHandler.GetDailyTrend)

	v1.POST("/records", ingestHandler.IngestRecords, middleware.RequireAuth(tokenService))

	// Rollup scheduler: one run at startup, then on the configured interval.
	scheduler := cron.New()
	if cfg.Scheduler.Enabled {
		runRollup := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			if err := rollupService.Run(ctx); err != nil {
				slog.Error("scheduled rollup failed", "error", err)
			}
		}

		go runRollup()
		if _, err := scheduler.AddFunc("@every "+cfg.Scheduler.RollupInterval.String(), runRollup); err != nil {
			log.Fatalf("Failed to schedule rollup: %v", err)
		}
		scheduler.Start()
		slog.Info("rollup scheduler started", "interval", cfg.Scheduler.RollupInterval.String())
	}

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	slog.Info("shutdown signal received", "signal", sig.String())

	if cfg.Scheduler.Enabled {
		<-scheduler.Stop().Done()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
