package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"warsha/internal/amqp"
	"warsha/internal/config"
	apphttp "warsha/internal/http"
	applog "warsha/internal/log"
	"warsha/internal/services"
	"warsha/internal/sheets"
	gsheet "warsha/internal/sheets/google"
	"warsha/internal/sheets/webhook"
	"warsha/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Persistence backend. Local data is the source of truth regardless of
	// mirroring.
	var persister storage.Persister
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		persister = repo
	default:
		fs, err := storage.NewFileStore(cfg.SnapshotPath)
		if err != nil {
			logger.Error("Failed to initialize file store", "error", err, "path", cfg.SnapshotPath)
			os.Exit(1)
		}
		persister = fs
	}
	logger.Info("Initialized persistence backend", "backend", cfg.DataBackend)

	st, err := persister.Load(ctx)
	if err != nil {
		logger.Error("Failed to load records", "error", err)
		os.Exit(1)
	}
	logger.Info("Loaded records",
		"clients", len(st.Clients),
		"cars", len(st.Cars),
		"maintenance", len(st.Maintenance))

	// Mirror backend (optional).
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
		logger.Info("Mirroring disabled")
	}

	// When queueing, records go to AMQP and the worker does the mirror
	// writes instead of the request path.
	var queue *amqp.Client
	if cfg.MirrorViaQueue {
		queue, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		logger.Info("Initialized mirror queue", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	}

	visits := services.NewVisitService(st, persister, appender, queue)
	defer visits.Close()

	srv := apphttp.NewServer(":"+cfg.Port, visits, logger.WithComponent(applog.ComponentHTTP))

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting warsha server", "port", cfg.Port, "backend", cfg.DataBackend, "mirror", cfg.MirrorBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
