package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"marketdata-service/internal/domain"
)

// Audit-time deviation ladder. Stricter in consequence than the
// acquisition-time flags: these outcomes gate the pipeline. Kept as a
// separate constant set on purpose.
const (
	auditWarnDeviationPct     = 3.0
	auditCriticalDeviationPct = 10.0
)

const (
	defaultMaxAge   = 6 * time.Hour
	defaultMinRates = 15
)

// Auditor replays a fixed, ordered sequence of checks over the last
// persisted dataset and produces the gating report. It never mutates the
// dataset.
type Auditor struct {
	Store     DatasetStore
	Reference ReferenceProvider

	Bounds   domain.BoundsTable
	Required []string
	MaxAge   time.Duration
	MinRates int

	RetryAttempts int
	RetryBase     time.Duration

	Log *zap.Logger
	Now func() time.Time
}

func (a *Auditor) init() {
	if a.Bounds == nil {
		a.Bounds = domain.RateBounds
	}
	if a.Required == nil {
		a.Required = domain.RequiredCurrencies
	}
	if a.MaxAge <= 0 {
		a.MaxAge = defaultMaxAge
	}
	if a.MinRates <= 0 {
		a.MinRates = defaultMinRates
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
}

// Run executes the check sequence. A missing dataset or an empty rate table
// ends the run immediately with a CRITICAL verdict; every other finding
// only contributes to the aggregate computed at the end.
func (a *Auditor) Run(ctx context.Context) *domain.AuditReport {
	a.init()
	b := domain.NewReportBuilder(a.Now())

	ds, err := a.Store.ReadDataset(ctx)
	if err != nil {
		a.Log.Error("audit.dataset_unavailable", zap.Error(err))
		b.Add("file_exists", domain.StatusCritical, err.Error())
		return b.Build(0, 0)
	}
	b.Add("file_exists", domain.StatusPass, "")

	a.checkFreshness(b, ds)

	if len(ds.Rates) == 0 {
		b.Add("rates_present", domain.StatusCritical, "No rates block in dataset")
		return b.Build(0, 0)
	}
	b.Add("rates_present", domain.StatusPass, fmt.Sprintf("%d rates found", len(ds.Rates)))

	a.checkMinimumCount(b, ds)
	a.checkBase(b, ds)
	a.checkRequired(b, ds)
	violations := a.checkBounds(b, ds)
	a.checkReference(ctx, b, ds)
	a.checkUpstream(b, ds)

	report := b.Build(len(ds.Rates), violations)
	a.Log.Info("audit.completed",
		zap.String("status", string(report.Status)),
		zap.Int("total_rates", report.Summary.TotalRates),
		zap.Int("bounds_violations", report.Summary.BoundsViolations),
		zap.Int("warnings", report.Summary.Warnings))
	return report
}

func (a *Auditor) checkFreshness(b *domain.ReportBuilder, ds *domain.MarketDataset) {
	t, ok := domain.ParseTimestamp(ds.LastUpdate)
	if !ok {
		b.Add("freshness", domain.StatusCritical, fmt.Sprintf("Cannot parse last_update: %s", ds.LastUpdate))
		return
	}
	hours := a.Now().UTC().Sub(t).Hours()
	if hours > a.MaxAge.Hours() {
		b.Add("freshness", domain.StatusWarning, fmt.Sprintf("Data is %.1fh old (max %.0fh)", hours, a.MaxAge.Hours()))
		return
	}
	b.Add("freshness", domain.StatusPass, fmt.Sprintf("%.1fh old", hours))
}

func (a *Auditor) checkMinimumCount(b *domain.ReportBuilder, ds *domain.MarketDataset) {
	n := len(ds.Rates)
	if n < a.MinRates {
		b.Add("minimum_count", domain.StatusCritical, fmt.Sprintf("Only %d rates (min %d)", n, a.MinRates))
		return
	}
	b.Add("minimum_count", domain.StatusPass, fmt.Sprintf("%d >= %d", n, a.MinRates))
}

func (a *Auditor) checkBase(b *domain.ReportBuilder, ds *domain.MarketDataset) {
	usd, ok := ds.Rates[domain.BaseCurrency]
	switch {
	case !ok:
		b.Add("usd_base", domain.StatusCritical, "USD rate missing, expected 1.0")
	case usd != 1.0:
		b.Add("usd_base", domain.StatusCritical, fmt.Sprintf("USD rate = %v, expected 1.0", usd))
	default:
		b.Add("usd_base", domain.StatusPass, "")
	}
}

func (a *Auditor) checkRequired(b *domain.ReportBuilder, ds *domain.MarketDataset) {
	var missing []string
	for _, code := range a.Required {
		if _, ok := ds.Rates[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		b.Add("required_currencies", domain.StatusWarning, "Missing: "+strings.Join(missing, ", "))
		return
	}
	b.Add("required_currencies", domain.StatusPass, "")
}

// checkBounds re-classifies every stored rate and fills the per-currency
// detail table. Violations are reported, never removed: the dataset is
// already persisted.
func (a *Auditor) checkBounds(b *domain.ReportBuilder, ds *domain.MarketDataset) int {
	var violations []string
	for _, code := range sortedCodes(ds.Rates) {
		if code == domain.BaseCurrency {
			continue
		}
		rate := ds.Rates[code]
		d := b.Currency(code, rate)
		d.BoundsStatus = a.Bounds.Classify(code, rate)
		if d.BoundsStatus == domain.BoundsFail {
			bounds := a.Bounds[code]
			d.Bounds = []float64{bounds.Low, bounds.High}
			violations = append(violations, code)
		}
	}
	if len(violations) > 0 {
		b.Add("bounds_validation", domain.StatusWarning, "Out of bounds: "+strings.Join(violations, ", "))
		return len(violations)
	}
	b.Add("bounds_validation", domain.StatusPass, "")
	return 0
}

func (a *Auditor) checkReference(ctx context.Context, b *domain.ReportBuilder, ds *domain.MarketDataset) {
	var refs map[string]float64
	var err error
	if a.Reference == nil {
		err = fmt.Errorf("no reference provider")
	} else {
		err = Retry(ctx, a.RetryAttempts, a.RetryBase, func() error {
			m, e := a.Reference.USDRates(ctx)
			if e != nil {
				return e
			}
			refs = m
			return nil
		})
	}
	if err != nil || len(refs) == 0 {
		a.Log.Warn("audit.reference_unavailable", zap.Error(err))
		b.Add("ecb_cross_check", domain.StatusWarning, "ECB data unavailable, skipped")
		return
	}

	devs := CrossCheck(ds.Rates, refs)
	var criticals, warns []string
	for _, code := range sortedCodes(devs) {
		dev := devs[code]
		d := b.Currency(code, ds.Rates[code])
		refRate := domain.Round(refs[code], 4)
		devPct := domain.Round(dev, 2)
		d.ReferenceRate = &refRate
		d.RefDeviationPct = &devPct

		switch {
		case dev > auditCriticalDeviationPct:
			criticals = append(criticals, fmt.Sprintf("%s(%.1f%%)", code, dev))
		case dev > auditWarnDeviationPct:
			warns = append(warns, fmt.Sprintf("%s(%.1f%%)", code, dev))
		}
	}
	switch {
	case len(criticals) > 0:
		b.Add("ecb_cross_check", domain.StatusCritical, "Critical deviations: "+strings.Join(criticals, ", "))
	case len(warns) > 0:
		b.Add("ecb_cross_check", domain.StatusWarning, "Deviations: "+strings.Join(warns, ", "))
	default:
		b.Add("ecb_cross_check", domain.StatusPass, fmt.Sprintf("All rates within %.1f%% of ECB", auditWarnDeviationPct))
	}
}

// checkUpstream surfaces problems the acquisition run already recorded
// about itself. Skipped entirely for datasets without the trail.
func (a *Auditor) checkUpstream(b *domain.ReportBuilder, ds *domain.MarketDataset) {
	au := ds.ExchangerAudit
	if au == nil {
		return
	}
	if len(au.FetchFailed) > 0 {
		b.Add("scraper_failures", domain.StatusWarning, "Scraper failed to fetch: "+strings.Join(au.FetchFailed, ", "))
	}
	if len(au.BoundsRejected) > 0 {
		codes := make([]string, 0, len(au.BoundsRejected))
		for _, r := range au.BoundsRejected {
			codes = append(codes, r.Code)
		}
		b.Add("scraper_bounds_rejected", domain.StatusWarning, "Scraper rejected: "+strings.Join(codes, ", "))
	}
	if len(au.FetchFailed) == 0 && len(au.BoundsRejected) == 0 {
		b.Add("scraper_audit", domain.StatusPass, "No scraper-level issues")
	}
}
