package domain

import "math"

// RawQuote is the provider answer for one symbol: the two most recent daily
// closing prices.
type RawQuote struct {
	Symbol        string
	LatestClose   float64
	PreviousClose float64
}

// Valid reports whether both sessions carry a positive price.
func (q RawQuote) Valid() bool {
	return q.LatestClose > 0 && q.PreviousClose > 0
}

// Trend is the day-over-day move in percent, rounded to 2 decimals.
func (q RawQuote) Trend() float64 {
	return Round((q.LatestClose-q.PreviousClose)/q.PreviousClose*100, 2)
}

// NormalizedRate expresses how many units of Code one unit of the base
// currency buys.
type NormalizedRate struct {
	Code  string
	Rate  float64
	Trend float64
}

// Normalize converts a raw quote into a base-currency rate, taking the
// reciprocal for pairs the provider quotes in the opposite direction.
func Normalize(p ExchangerPair, q RawQuote) NormalizedRate {
	rate := q.LatestClose
	if p.Invert {
		rate = 1 / rate
	}
	return NormalizedRate{Code: p.Code, Rate: Round(rate, 6), Trend: q.Trend()}
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// DeviationPct is the relative gap between a scraped rate and a reference
// rate, in percent of the reference.
func DeviationPct(scraped, reference float64) float64 {
	return math.Abs(scraped-reference) / reference * 100
}
