package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"warsha/internal/amqp"
	"warsha/internal/config"
	applog "warsha/internal/log"
	"warsha/internal/sheets"
	gsheet "warsha/internal/sheets/google"
	"warsha/internal/sheets/webhook"
	"warsha/internal/worker"
)

// The worker drains the outbound mirror queue and replays each record
// against the configured spreadsheet target. Failed writes are requeued.
func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Component: applog.ComponentWorker})
	applog.SetDefault(logger)

	logger.Info("Starting warsha-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var appender sheets.Appender
	switch cfg.MirrorBackend {
	case "webhook":
		appender = webhook.New(cfg.SheetsURL)
		logger.Info("Initialized webhook mirror", "url", cfg.SheetsURL)
	case "google":
		cli, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		appender = cli
		logger.Info("Initialized Google Sheets mirror", "spreadsheet_id", cfg.GoogleSheetID)
	default:
		logger.Error("Worker requires a mirror backend", "mirror", cfg.MirrorBackend)
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	mirrorWorker := worker.NewMirrorWorker(appender)

	go func() {
		handler := func(msg *amqp.MirrorMessage) error {
			return mirrorWorker.HandleMirrorMessage(ctx, msg)
		}
		if err := amqpClient.ConsumeMirrors(ctx, handler); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Error("Message consumption failed", "error", err)
			}
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	logger.Info("Shutting down worker...")
	cancel()

	// Give in-flight deliveries a moment to ack before the connection drops.
	time.Sleep(2 * time.Second)
	logger.Info("Worker shutdown complete")
}
