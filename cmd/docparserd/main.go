package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-doc-parser/internal/common"
	"ai-doc-parser/internal/extract"
	"ai-doc-parser/internal/llm/openai"
	"ai-doc-parser/internal/notify"
	"ai-doc-parser/internal/pipeline"
	"ai-doc-parser/internal/repository"
	"ai-doc-parser/internal/rules"
	"ai-doc-parser/internal/server"
	"ai-doc-parser/internal/storage"
	"ai-doc-parser/pkg/logger"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			configPath = "config.yaml"
		}
	}
	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	log := slog.Default()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Object store
	blobs, err := storage.NewMinioGateway(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		log.Error("failed to initialize object store", "error", err)
		os.Exit(1)
	}
	if err := blobs.EnsureBucket(ctx); err != nil {
		log.Error("failed to ensure bucket", "error", err)
		os.Exit(1)
	}

	// Task store
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, log)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, log); err != nil {
		log.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		log.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	tasks := repository.NewTaskRepository(entc, log)
	documents := repository.NewDocumentRepository(entc, log)

	// Pipeline dependencies
	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		Soffice:       cfg.OCR.Soffice,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, log)

	model := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, log)

	notifier := notify.NewNotifier(notify.Config{
		Timeout:     cfg.Notify.Timeout,
		MaxAttempts: cfg.Notify.MaxAttempts,
		BaseBackoff: cfg.Notify.BaseBackoff,
		QueueSize:   cfg.Notify.QueueSize,
	}, log)

	processor := pipeline.NewProcessor(tasks, documents, blobs, extractor, model, rules.NewValidator(), notifier, log)
	queue := pipeline.NewQueue(processor, log,
		pipeline.WithWorkers(cfg.Worker.Workers),
		pipeline.WithQueueSize(cfg.Worker.QueueSize),
		pipeline.WithProcessTimeout(cfg.Worker.ProcessTimeout),
	)

	// HTTP API
	handler := server.NewHandler(tasks, documents, blobs, queue, log)
	router := server.NewRouter(handler)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	queue.Shutdown(shutdownCtx)
	if err := notifier.Shutdown(shutdownCtx); err != nil {
		log.Error("notifier shutdown interrupted", "error", err)
	}

	log.Info("server exited gracefully")
}
