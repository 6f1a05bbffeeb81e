package domain

import (
	"sort"
	"time"
)

// CheckStatus is the severity of one audit check or of the whole report.
type CheckStatus string

const (
	StatusPass     CheckStatus = "PASS"
	StatusWarning  CheckStatus = "WARNING"
	StatusCritical CheckStatus = "CRITICAL"
)

// CheckResult is one entry in the ordered audit sequence.
type CheckResult struct {
	Check  string      `json:"check"`
	Status CheckStatus `json:"status"`
	Detail string      `json:"detail"`
}

// CurrencyDetail merges the bounds classification and the reference
// deviation for one code. Reference fields stay nil when the feed was
// unavailable or carried no entry for the code.
type CurrencyDetail struct {
	Rate            float64      `json:"rate"`
	BoundsStatus    BoundsStatus `json:"bounds_status"`
	Bounds          []float64    `json:"bounds,omitempty"`
	ReferenceRate   *float64     `json:"ecb_rate,omitempty"`
	RefDeviationPct *float64     `json:"ecb_deviation_pct,omitempty"`
}

// ReportSummary aggregates the check outcomes.
type ReportSummary struct {
	TotalRates       int  `json:"total_rates"`
	BoundsViolations int  `json:"bounds_violations"`
	Warnings         int  `json:"warnings"`
	Critical         bool `json:"critical"`
}

// AuditReport is the persisted verdict of one audit run. It is never
// mutated after Build returns it.
type AuditReport struct {
	Timestamp string                    `json:"timestamp"`
	Status    CheckStatus               `json:"status"`
	Checks    []CheckResult             `json:"checks"`
	Summary   ReportSummary             `json:"summary"`
	Details   map[string]CurrencyDetail `json:"details_per_currency"`
}

// ReportBuilder accumulates check outcomes in execution order and the
// per-currency detail table filled in by the bounds and cross-check steps.
type ReportBuilder struct {
	timestamp string
	checks    []CheckResult
	details   map[string]*CurrencyDetail
	warnings  int
	critical  bool
}

// NewReportBuilder starts a report stamped with the given wall time.
func NewReportBuilder(now time.Time) *ReportBuilder {
	return &ReportBuilder{
		timestamp: now.UTC().Format(time.RFC3339Nano),
		details:   map[string]*CurrencyDetail{},
	}
}

// Add appends one check outcome and tracks its contribution to the overall
// severity.
func (b *ReportBuilder) Add(check string, status CheckStatus, detail string) {
	b.checks = append(b.checks, CheckResult{Check: check, Status: status, Detail: detail})
	switch status {
	case StatusWarning:
		b.warnings++
	case StatusCritical:
		b.critical = true
	}
}

// Currency returns the detail entry for code, creating it with the given
// rate on first use.
func (b *ReportBuilder) Currency(code string, rate float64) *CurrencyDetail {
	d, ok := b.details[code]
	if !ok {
		d = &CurrencyDetail{Rate: rate, BoundsStatus: BoundsNoBounds}
		b.details[code] = d
	}
	return d
}

// Codes lists the currencies present in the detail table, sorted.
func (b *ReportBuilder) Codes() []string {
	codes := make([]string, 0, len(b.details))
	for code := range b.details {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Build seals the report. Overall status is CRITICAL if any check was
// CRITICAL, WARNING if any check warned, PASS otherwise.
func (b *ReportBuilder) Build(totalRates, boundsViolations int) *AuditReport {
	status := StatusPass
	if b.warnings > 0 {
		status = StatusWarning
	}
	if b.critical {
		status = StatusCritical
	}
	details := make(map[string]CurrencyDetail, len(b.details))
	for code, d := range b.details {
		details[code] = *d
	}
	return &AuditReport{
		Timestamp: b.timestamp,
		Status:    status,
		Checks:    b.checks,
		Summary: ReportSummary{
			TotalRates:       totalRates,
			BoundsViolations: boundsViolations,
			Warnings:         b.warnings,
			Critical:         b.critical,
		},
		Details: details,
	}
}
