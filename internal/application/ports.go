package application

import (
	"context"

	"marketdata-service/internal/domain"
)

// QuoteProvider fetches a trailing window of daily closing prices for one
// provider symbol, oldest first.
type QuoteProvider interface {
	DailyCloses(ctx context.Context, symbol string, days int) ([]float64, error)
}

// ReferenceProvider fetches the independent reference rate set, already
// converted to the base currency. An empty map means the feed answered but
// carried no usable base entry.
type ReferenceProvider interface {
	USDRates(ctx context.Context) (map[string]float64, error)
}

// DatasetStore persists and loads the market dataset artifact as one whole
// document.
type DatasetStore interface {
	WriteDataset(ctx context.Context, d *domain.MarketDataset) error
	ReadDataset(ctx context.Context) (*domain.MarketDataset, error)
}

// ReportStore persists and loads the audit report artifact.
type ReportStore interface {
	WriteReport(ctx context.Context, r *domain.AuditReport) error
	ReadReport(ctx context.Context) (*domain.AuditReport, error)
}

// Publisher mirrors finished artifacts to an external location. Publish
// failures never fail the producing run.
type Publisher interface {
	PublishDataset(ctx context.Context, d *domain.MarketDataset) error
	PublishReport(ctx context.Context, r *domain.AuditReport) error
}

// NoopPublisher keeps artifacts local only.
type NoopPublisher struct{}

func (NoopPublisher) PublishDataset(context.Context, *domain.MarketDataset) error { return nil }
func (NoopPublisher) PublishReport(context.Context, *domain.AuditReport) error    { return nil }

// RunLock prevents overlapping acquisition runs.
type RunLock interface {
	// TryAcquire returns true if key was free and is now held for the
	// lock's lifetime. Returns false if another run holds it.
	TryAcquire(ctx context.Context, key string) (bool, error)
}

// NoopLock always acquires; useful for tests/dev when Redis is disabled.
type NoopLock struct{}

func (NoopLock) TryAcquire(context.Context, string) (bool, error) { return true, nil }

// ScrapeLockKey guards the acquisition window against overlapping cron
// invocations.
const ScrapeLockKey = "marketdata:scrape"
