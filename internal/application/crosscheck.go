package application

import (
	"sort"

	"marketdata-service/internal/domain"
)

// CrossCheck computes per-currency deviations of scraped rates against a
// reference set sharing the same base. The base currency, codes missing
// from the reference, and non-positive reference entries are skipped.
// Callers apply their own threshold ladder to the result.
func CrossCheck(rates, reference map[string]float64) map[string]float64 {
	out := make(map[string]float64)
	for code, rate := range rates {
		if code == domain.BaseCurrency {
			continue
		}
		ref, ok := reference[code]
		if !ok || ref <= 0 {
			continue
		}
		out[code] = domain.DeviationPct(rate, ref)
	}
	return out
}

// sortedCodes returns map keys in ascending order for deterministic output.
func sortedCodes(m map[string]float64) []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
