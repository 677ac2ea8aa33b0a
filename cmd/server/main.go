package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/lotto/internal/api"
	"github.com/vytor/lotto/internal/charts"
	"github.com/vytor/lotto/internal/config"
	"github.com/vytor/lotto/internal/db"
	"github.com/vytor/lotto/internal/jobs"
	"github.com/vytor/lotto/internal/logger"
	"github.com/vytor/lotto/internal/repository/sqlite"
	"github.com/vytor/lotto/internal/services"
	"github.com/vytor/lotto/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("Lotto Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("seed_path=%s", cfg.SeedPath)
	log.Debug("default_tolerance_days=%v", cfg.DefaultToleranceDays)
	log.Debug("enforce_saturday=%t", cfg.EnforceSaturday)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error("failed to close database: %v", err)
		}
	}()

	// Repositories
	drawRepo := sqlite.NewDrawRepository(database.DB)
	rowRepo := sqlite.NewRowRepository(database.DB)
	settingsRepo := sqlite.NewSettingsRepository(database.DB)

	// Services
	settingsService := services.NewSettingsService(settingsRepo, cfg.DefaultToleranceDays)
	drawService := services.NewDrawService(drawRepo, cfg.EnforceSaturday)
	importService := services.NewImportService(drawRepo)

	srv := &api.Server{
		DB:              database,
		DrawService:     drawService,
		RowService:      services.NewRowService(rowRepo),
		WinnerService:   services.NewWinnerService(drawRepo, rowRepo),
		StatsService:    services.NewStatsService(drawRepo, settingsService),
		SettingsService: settingsService,
		ImportService:   importService,
		ChartConfig:     charts.DefaultChartConfig(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	importPool := worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)
	importPool.Start(ctx)
	jobQueue := jobs.NewWorkerQueue(importPool, importService)

	if err := enqueueSeedImport(ctx, cfg.SeedPath, drawService, jobQueue); err != nil {
		log.Error("failed to schedule seed import: %v", err)
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping import pool")
	cancel()
	importPool.Stop()

	log.Info("===========================================")
	log.Info("Lotto Server Stopped")
	log.Info("===========================================")
}

// enqueueSeedImport schedules the seed file only while the draw table is empty.
func enqueueSeedImport(ctx context.Context, path string, draws services.DrawService, queue jobs.JobQueue) error {
	if path == "" {
		return nil
	}
	log := logger.FromContext(ctx).WithField("seed_path", path)

	n, err := draws.CountDraws(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Debug("draw table holds %d draws, skipping seed import", n)
		return nil
	}

	log.Info("draw table empty, scheduling seed import")
	return queue.EnqueueSeedImport(path)
}
