package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_ReportBuilder_AllPass(t *testing.T) {
	t.Parallel()
	b := NewReportBuilder(time.Date(2026, 2, 11, 9, 0, 0, 0, time.UTC))
	b.Add("file_exists", StatusPass, "")
	b.Add("freshness", StatusPass, "0.5h old")

	r := b.Build(16, 0)
	require.Equal(t, StatusPass, r.Status)
	require.Len(t, r.Checks, 2)
	require.Equal(t, 16, r.Summary.TotalRates)
	require.Equal(t, 0, r.Summary.Warnings)
	require.False(t, r.Summary.Critical)
	require.Equal(t, "2026-02-11T09:00:00Z", r.Timestamp)
}

func Test_ReportBuilder_WarningAggregation(t *testing.T) {
	t.Parallel()
	b := NewReportBuilder(time.Now())
	b.Add("file_exists", StatusPass, "")
	b.Add("freshness", StatusWarning, "data is 8.0h old (max 6h)")

	r := b.Build(16, 0)
	require.Equal(t, StatusWarning, r.Status)
	require.Equal(t, 1, r.Summary.Warnings)
}

func Test_ReportBuilder_CriticalWins(t *testing.T) {
	t.Parallel()
	b := NewReportBuilder(time.Now())
	b.Add("freshness", StatusWarning, "stale")
	b.Add("usd_base", StatusCritical, "USD rate = 2, expected 1.0")
	b.Add("required_currencies", StatusPass, "")

	r := b.Build(16, 0)
	require.Equal(t, StatusCritical, r.Status)
	require.True(t, r.Summary.Critical)
	require.Equal(t, 1, r.Summary.Warnings)
}

func Test_ReportBuilder_ChecksKeepOrder(t *testing.T) {
	t.Parallel()
	b := NewReportBuilder(time.Now())
	b.Add("file_exists", StatusPass, "")
	b.Add("freshness", StatusPass, "")
	b.Add("rates_present", StatusPass, "")

	r := b.Build(0, 0)
	require.Equal(t, "file_exists", r.Checks[0].Check)
	require.Equal(t, "freshness", r.Checks[1].Check)
	require.Equal(t, "rates_present", r.Checks[2].Check)
}

func Test_ReportBuilder_CurrencyUpsert(t *testing.T) {
	t.Parallel()
	b := NewReportBuilder(time.Now())

	d := b.Currency("EUR", 0.92)
	d.BoundsStatus = BoundsPass

	again := b.Currency("EUR", 99)
	require.Same(t, d, again)
	require.InDelta(t, 0.92, again.Rate, 1e-12)

	b.Currency("CHF", 0.88)
	require.Equal(t, []string{"CHF", "EUR"}, b.Codes())

	r := b.Build(2, 0)
	require.Equal(t, BoundsPass, r.Details["EUR"].BoundsStatus)
}
