package provider

import (
	"context"

	"marketdata-service/internal/application"
)

// Ensure Fake implements application.QuoteProvider.
var _ application.QuoteProvider = (*Fake)(nil)

// Fake serves the same canned close series for every symbol. Useful for dev
// runs without network access.
type Fake struct {
	closes []float64
}

func NewFake(closes ...float64) *Fake { return &Fake{closes: closes} }

func (f *Fake) DailyCloses(_ context.Context, _ string, _ int) ([]float64, error) {
	out := make([]float64, len(f.closes))
	copy(out, f.closes)
	return out, nil
}
