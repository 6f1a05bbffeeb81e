package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"marketdata-service/internal/application"
	"marketdata-service/internal/bootstrap"
	"marketdata-service/internal/config"
	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/logx"
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
	auditor := &application.Auditor{
		Store:         st,
		Reference:     bootstrap.BuildReferenceProvider(cfg),
		Bounds:        tables.Bounds,
		RetryAttempts: cfg.RetryAttempts,
		RetryBase:     cfg.RetryBase,
		Log:           log,
	}

	report := auditor.Run(ctx)

	if err := st.WriteReport(ctx, report); err != nil {
		log.Error("persist report", zap.Error(err))
		os.Exit(1)
	}

	publisher, err := bootstrap.BuildPublisher(ctx, cfg)
	if err != nil {
		log.Warn("build publisher", zap.Error(err))
	} else if err := publisher.PublishReport(ctx, report); err != nil {
		log.Warn("publish report", zap.Error(err))
	}

	printSummary(report)

	if report.Status == domain.StatusCritical {
		os.Exit(1)
	}
}

func printSummary(r *domain.AuditReport) {
	fmt.Printf("Audit %s at %s\n", r.Status, r.Timestamp)
	fmt.Printf("  rates=%d bounds_violations=%d warnings=%d critical=%v\n",
		r.Summary.TotalRates, r.Summary.BoundsViolations, r.Summary.Warnings, r.Summary.Critical)
	for _, c := range r.Checks {
		line := fmt.Sprintf("  [%s] %s", c.Status, c.Check)
		if c.Detail != "" {
			line += ": " + c.Detail
		}
		fmt.Println(line)
	}
}
