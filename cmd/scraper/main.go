package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"marketdata-service/internal/application"
	"marketdata-service/internal/bootstrap"
	"marketdata-service/internal/config"
	"marketdata-service/internal/infrastructure/logx"
	"marketdata-service/internal/infrastructure/worker"
)

func init() { _ = godotenv.Load() }

func main() {
	log := logx.L()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tables, err := bootstrap.BuildTables(cfg)
	if err != nil {
		log.Fatal("load tables", zap.Error(err))
	}

	st := bootstrap.BuildStore(cfg)
	publisher, err := bootstrap.BuildPublisher(ctx, cfg)
	if err != nil {
		log.Fatal("build publisher", zap.Error(err))
	}
	lock, closeLock := bootstrap.BuildRunLock(cfg)
	defer closeLock()

	acq := &application.Acquisition{
		Quotes:        bootstrap.BuildQuoteProvider(cfg),
		Reference:     bootstrap.BuildReferenceProvider(cfg),
		Store:         st,
		Publisher:     publisher,
		Catalog:       tables.Catalog,
		Pairs:         tables.Pairs,
		Bounds:        tables.Bounds,
		WindowDays:    cfg.WindowDays,
		RetryAttempts: cfg.RetryAttempts,
		RetryBase:     cfg.RetryBase,
		Log:           log,
	}

	runOnce := func(ctx context.Context) error {
		held, err := lock.TryAcquire(ctx, application.ScrapeLockKey)
		if err != nil {
			log.Warn("scrape.lock_check_failed", zap.Error(err))
		} else if !held {
			log.Info("scrape.skipped_lock_held")
			return nil
		}
		ds, err := acq.Run(ctx)
		if err != nil {
			return err
		}
		return application.CheckYield(ds)
	}

	if cfg.ScrapeEvery > 0 {
		s := &worker.Scheduler{Every: cfg.ScrapeEvery, Job: runOnce, Log: log}
		s.Start(ctx)
		return
	}

	if err := runOnce(ctx); err != nil {
		log.Error("scrape.failed", zap.Error(err))
		os.Exit(1)
	}
}
