package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketdata-service/internal/domain"
)

// Acquisition-time deviation ladder. Findings above the flag level are
// recorded in the run's audit trail, above the critical level they are
// additionally logged at error severity. Neither blocks the run; the audit
// binary applies its own stricter ladder later.
const (
	scrapeFlagDeviationPct     = 2.0
	scrapeCriticalDeviationPct = 15.0
)

// MinValidatedRates is the hard floor under which an acquisition run fails
// its exit status even though the dataset is still persisted.
const MinValidatedRates = 10

const (
	defaultWindowDays    = 5
	defaultRetryAttempts = 3
	defaultRetryBase     = 2 * time.Second
)

var (
	errShortWindow = errors.New("fewer than 2 sessions returned")
	errNonPositive = errors.New("non-positive close price")
)

// Acquisition runs one full market data collection pass: instrument
// sections, exchanger rates with bounds filtering, reference deviation
// flagging, persistence, optional mirroring.
type Acquisition struct {
	Quotes    QuoteProvider
	Reference ReferenceProvider
	Store     DatasetStore
	Publisher Publisher

	Catalog domain.Catalog
	Pairs   []domain.ExchangerPair
	Bounds  domain.BoundsTable

	// WindowDays sizes the trailing close window so two sessions survive
	// weekends and holidays.
	WindowDays    int
	RetryAttempts int
	RetryBase     time.Duration

	Log *zap.Logger

	// Now and NewRunID are seams for tests.
	Now      func() time.Time
	NewRunID func() string
}

func (a *Acquisition) init() {
	if a.Publisher == nil {
		a.Publisher = NoopPublisher{}
	}
	if a.Catalog == nil {
		a.Catalog = domain.DefaultCatalog()
	}
	if a.Pairs == nil {
		a.Pairs = domain.ExchangerPairs
	}
	if a.Bounds == nil {
		a.Bounds = domain.RateBounds
	}
	if a.WindowDays <= 0 {
		a.WindowDays = defaultWindowDays
	}
	if a.RetryAttempts <= 0 {
		a.RetryAttempts = defaultRetryAttempts
	}
	if a.RetryBase <= 0 {
		a.RetryBase = defaultRetryBase
	}
	if a.Log == nil {
		a.Log = zap.NewNop()
	}
	if a.Now == nil {
		a.Now = time.Now
	}
	if a.NewRunID == nil {
		a.NewRunID = uuid.NewString
	}
}

// Run collects every section and exchanger rate, persists the dataset, and
// mirrors it through the publisher. The dataset is persisted even when the
// yield later fails CheckYield; per-symbol failures are recorded, never
// fatal.
func (a *Acquisition) Run(ctx context.Context) (*domain.MarketDataset, error) {
	a.init()
	runID := a.NewRunID()
	log := a.Log.With(zap.String("run_id", runID))
	started := a.Now().UTC()

	ds := &domain.MarketDataset{LastUpdate: started.Format(time.RFC3339Nano)}
	for _, cat := range domain.Categories {
		items := a.buildSection(ctx, log, cat)
		ds.SetSection(cat, items)
		ds.TotalItems += len(items)
	}

	rates, audit := a.collectRates(ctx, log)
	audit.RunID = runID
	ds.Rates = rates
	ds.ExchangerAudit = audit

	if err := a.Store.WriteDataset(ctx, ds); err != nil {
		return nil, fmt.Errorf("persist dataset: %w", err)
	}
	if err := a.Publisher.PublishDataset(ctx, ds); err != nil {
		log.Warn("scrape.publish_failed", zap.Error(err))
	}

	log.Info("scrape.completed",
		zap.Int("total_items", ds.TotalItems),
		zap.Int("rates", len(rates)),
		zap.Int("validated", audit.Validated),
		zap.Int("fetch_failed", len(audit.FetchFailed)),
		zap.Int("bounds_rejected", len(audit.BoundsRejected)))
	return ds, nil
}

// CheckYield maps a finished dataset onto the run's exit policy: no items
// at all, or too few validated rates, fail the run after persistence.
func CheckYield(ds *domain.MarketDataset) error {
	if ds.TotalItems == 0 {
		return ErrNoData
	}
	if au := ds.ExchangerAudit; au != nil && au.Validated < MinValidatedRates {
		return fmt.Errorf("%w: %d validated, need %d", ErrLowYield, au.Validated, MinValidatedRates)
	}
	return nil
}

// fetchQuote pulls the two most recent daily closes for symbol, retrying
// transient failures with doubling delay.
func (a *Acquisition) fetchQuote(ctx context.Context, symbol string) (domain.RawQuote, error) {
	var q domain.RawQuote
	err := Retry(ctx, a.RetryAttempts, a.RetryBase, func() error {
		closes, err := a.Quotes.DailyCloses(ctx, symbol, a.WindowDays)
		if err != nil {
			return err
		}
		if len(closes) < 2 {
			return errShortWindow
		}
		q = domain.RawQuote{
			Symbol:        symbol,
			LatestClose:   closes[len(closes)-1],
			PreviousClose: closes[len(closes)-2],
		}
		if !q.Valid() {
			return errNonPositive
		}
		return nil
	})
	if err != nil {
		return domain.RawQuote{}, err
	}
	return q, nil
}

func (a *Acquisition) buildSection(ctx context.Context, log *zap.Logger, cat domain.Category) []domain.SectionItem {
	instruments := a.Catalog[cat]
	items := make([]domain.SectionItem, 0, len(instruments))
	for _, inst := range instruments {
		q, err := a.fetchQuote(ctx, inst.Ticker)
		if err != nil {
			log.Warn("scrape.instrument_failed",
				zap.String("category", string(cat)),
				zap.String("ticker", inst.Ticker),
				zap.Error(err))
			continue
		}
		item := domain.SectionItem{
			Ticker: inst.Ticker,
			Name:   inst.Name,
			Price:  domain.Round(q.LatestClose, 4),
			Trend:  q.Trend(),
		}
		if inst.Currency != "" {
			c := inst.Currency
			item.Currency = &c
		}
		if inst.Unit != "" {
			u := inst.Unit
			item.Unit = &u
		}
		items = append(items, item)
	}
	return items
}

func (a *Acquisition) collectRates(ctx context.Context, log *zap.Logger) (map[string]float64, *domain.AcquisitionAudit) {
	rates := map[string]float64{domain.BaseCurrency: 1.0}
	audit := &domain.AcquisitionAudit{
		TotalRequested:       len(a.Pairs),
		BoundsRejected:       []domain.BoundsRejection{},
		FetchFailed:          []string{},
		CrossCheckDeviations: map[string]domain.Deviation{},
		CrossCheckSource:     "ECB",
	}
	for _, p := range a.Pairs {
		q, err := a.fetchQuote(ctx, p.Symbol)
		if err != nil {
			log.Warn("scrape.rate_failed",
				zap.String("code", p.Code),
				zap.String("symbol", p.Symbol),
				zap.Error(err))
			audit.FetchFailed = append(audit.FetchFailed, p.Code)
			continue
		}
		audit.Fetched++

		nr := domain.Normalize(p, q)
		if a.Bounds.Classify(p.Code, nr.Rate) == domain.BoundsFail {
			b := a.Bounds[p.Code]
			log.Warn("scrape.bounds_rejected",
				zap.String("code", p.Code),
				zap.Float64("rate", nr.Rate),
				zap.Float64("low", b.Low),
				zap.Float64("high", b.High))
			audit.BoundsRejected = append(audit.BoundsRejected, domain.BoundsRejection{
				Code:   p.Code,
				Rate:   nr.Rate,
				Bounds: [2]float64{b.Low, b.High},
			})
			continue
		}

		audit.Validated++
		rates[p.Code] = domain.Round(nr.Rate, 4)
	}

	a.flagDeviations(ctx, log, rates, audit)
	audit.FinalCount = len(rates)
	return rates, audit
}

// flagDeviations records reference deviations above the flag level in the
// audit trail. An unreachable or empty reference feed skips the check.
func (a *Acquisition) flagDeviations(ctx context.Context, log *zap.Logger, rates map[string]float64, audit *domain.AcquisitionAudit) {
	if a.Reference == nil {
		log.Warn("scrape.cross_check_skipped", zap.String("reason", "no reference provider"))
		return
	}
	var refs map[string]float64
	err := Retry(ctx, a.RetryAttempts, a.RetryBase, func() error {
		m, err := a.Reference.USDRates(ctx)
		if err != nil {
			return err
		}
		refs = m
		return nil
	})
	if err != nil || len(refs) == 0 {
		log.Warn("scrape.cross_check_skipped", zap.Error(err))
		return
	}

	devs := CrossCheck(rates, refs)
	for _, code := range sortedCodes(devs) {
		dev := devs[code]
		if dev <= scrapeFlagDeviationPct {
			continue
		}
		audit.CrossCheckDeviations[code] = domain.Deviation{
			Scraped:      rates[code],
			Reference:    domain.Round(refs[code], 4),
			DeviationPct: domain.Round(dev, 2),
		}
		if dev > scrapeCriticalDeviationPct {
			log.Error("scrape.cross_check_critical",
				zap.String("code", code),
				zap.Float64("scraped", rates[code]),
				zap.Float64("reference", refs[code]),
				zap.Float64("deviation_pct", domain.Round(dev, 2)))
		} else {
			log.Warn("scrape.cross_check_deviation",
				zap.String("code", code),
				zap.Float64("deviation_pct", domain.Round(dev, 2)))
		}
	}
}
