package domain

// BoundsStatus classifies a rate against the sanity table.
type BoundsStatus string

const (
	BoundsPass     BoundsStatus = "PASS"
	BoundsFail     BoundsStatus = "FAIL"
	BoundsNoBounds BoundsStatus = "NO_BOUNDS"
)

// Bounds is an inclusive sanity range for a USD-based rate.
type Bounds struct {
	Low  float64
	High float64
}

// Contains reports whether v lies within the range, endpoints included.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Low && v <= b.High
}

// BoundsTable maps currency codes to their sanity ranges. Codes absent from
// the table are exempt from bounds checking.
type BoundsTable map[string]Bounds

// Classify returns PASS, FAIL, or NO_BOUNDS for the given rate.
func (t BoundsTable) Classify(code string, rate float64) BoundsStatus {
	b, ok := t[code]
	if !ok {
		return BoundsNoBounds
	}
	if b.Contains(rate) {
		return BoundsPass
	}
	return BoundsFail
}

// RateBounds holds generous per-currency ranges meant to catch only truly
// aberrant values, roughly +-50% around recent norms.
var RateBounds = BoundsTable{
	"EUR": {0.50, 1.50},
	"GBP": {0.40, 1.30},
	"JPY": {70, 250},
	"CAD": {0.90, 2.00},
	"AUD": {0.90, 2.20},
	"CNY": {4.0, 10.0},
	"CHF": {0.50, 1.50},
	"HKD": {5.0, 10.0},
	"SGD": {0.80, 2.00},
	"SEK": {5.0, 16.0},
	"KRW": {700, 2000},
	"NOK": {5.0, 16.0},
	"NZD": {0.90, 2.50},
	"INR": {50, 130},
	"MXN": {10, 30},
	"TWD": {20, 45},
	"ZAR": {10, 30},
	"BRL": {3.0, 8.0},
	"DKK": {4.0, 10.0},
	"PLN": {2.5, 6.0},
	"THB": {20, 50},
	"IDR": {10000, 22000},
	"HUF": {200, 550},
	"CZK": {15, 35},
	"ILS": {2.5, 5.5},
	"CLP": {500, 1400},
	"PHP": {35, 75},
	"AED": {3.0, 4.5},
	"COP": {2500, 6000},
	"SAR": {3.0, 4.5},
	"MYR": {3.0, 7.0},
	"RON": {3.0, 7.0},
	"MAD": {7.0, 14.0},
}
