package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/contre95/filepulse/src/features/config"
	"github.com/contre95/filepulse/src/features/history"
	"github.com/contre95/filepulse/src/features/hosting"
	"github.com/contre95/filepulse/src/features/logging"
	"github.com/contre95/filepulse/src/features/metrics"
	"github.com/contre95/filepulse/src/features/monitoring"
	"github.com/contre95/filepulse/src/features/sensors"
	"github.com/contre95/filepulse/src/infra/database"
	"github.com/contre95/filepulse/src/infra/snapshot"
	"github.com/contre95/filepulse/src/infra/watcher"
)

const configPath = "config.yaml"

func main() {
	// Load configuration
	cfgManager, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	// Create the emission history store
	store, err := database.NewSqliteHistory(cfgManager.Get().Database.Path, cfgManager.Get().Database.MaxRows)
	if err != nil {
		log.Fatalf("failed to create history store: %v", err)
	}
	defer store.Close()
	historyService := history.NewService(store)

	// Collect the publisher sinks: history always, Telegram when enabled
	sinks := []sensors.Sink{historyService}
	if cfgManager.Get().Telegram.Enabled {
		notifier, err := hosting.NewTelegramNotifier(cfgManager)
		if err != nil {
			slog.Error("Failed to initialize Telegram notifier", "error", err)
		} else {
			sinks = append(sinks, notifier)
			slog.Info("Telegram notifier enabled")
		}
	}
	publisher := sensors.NewPublisher(sinks...)

	// Create the monitoring service
	recorder := metrics.NewRecorder()
	reader := snapshot.NewReader()
	watcherFactory := func() (monitoring.Watcher, error) {
		return watcher.NewWatcher()
	}
	monitoringService := monitoring.NewService(cfgManager, reader, publisher, watcherFactory, recorder)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	monitoringService.Start(ctx)
	defer monitoringService.Stop()

	// Create and start the HTTP server
	server := hosting.NewServer(cfgManager, configPath, monitoringService, publisher, historyService, recorder)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfgManager.Get().Server.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down...")

	monitoringService.Stop()

	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.")
}
