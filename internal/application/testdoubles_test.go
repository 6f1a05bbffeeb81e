package application

import (
	"context"
	"errors"
	"fmt"

	"marketdata-service/internal/domain"
)

var errOutage = errors.New("temporary outage")

type fakeQuotes struct {
	closes map[string][]float64
	errs   map[string]error
	failN  map[string]int // fail this many calls per symbol before succeeding
	calls  map[string]int
}

func (f *fakeQuotes) DailyCloses(_ context.Context, symbol string, _ int) ([]float64, error) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[symbol]++
	if f.calls[symbol] <= f.failN[symbol] {
		return nil, errOutage
	}
	if err := f.errs[symbol]; err != nil {
		return nil, err
	}
	closes, ok := f.closes[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %s", symbol)
	}
	return closes, nil
}

type fakeReference struct {
	rates map[string]float64
	err   error
	calls int
}

func (f *fakeReference) USDRates(context.Context) (map[string]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

type memStore struct {
	ds     *domain.MarketDataset
	report *domain.AuditReport

	readErr  error
	writeErr error
	writes   int
}

func (m *memStore) WriteDataset(_ context.Context, d *domain.MarketDataset) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.ds = d
	m.writes++
	return nil
}

func (m *memStore) ReadDataset(context.Context) (*domain.MarketDataset, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.ds == nil {
		return nil, fmt.Errorf("market_data.json: %w", domain.ErrNotFound)
	}
	return m.ds, nil
}

func (m *memStore) WriteReport(_ context.Context, r *domain.AuditReport) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.report = r
	return nil
}

func (m *memStore) ReadReport(context.Context) (*domain.AuditReport, error) {
	if m.report == nil {
		return nil, fmt.Errorf("audit_report.json: %w", domain.ErrNotFound)
	}
	return m.report, nil
}

type fakePublisher struct {
	datasets []*domain.MarketDataset
	reports  []*domain.AuditReport
	err      error
}

func (f *fakePublisher) PublishDataset(_ context.Context, d *domain.MarketDataset) error {
	if f.err != nil {
		return f.err
	}
	f.datasets = append(f.datasets, d)
	return nil
}

func (f *fakePublisher) PublishReport(_ context.Context, r *domain.AuditReport) error {
	if f.err != nil {
		return f.err
	}
	f.reports = append(f.reports, r)
	return nil
}
