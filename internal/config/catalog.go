package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"marketdata-service/internal/domain"
)

// Tables bundles the static acquisition inputs after any file override has
// been applied.
type Tables struct {
	Catalog domain.Catalog
	Pairs   []domain.ExchangerPair
	Bounds  domain.BoundsTable
}

type catalogOverride struct {
	DisableSymbols    []string             `yaml:"disable_symbols"`
	DisableCurrencies []string             `yaml:"disable_currencies"`
	Bounds            map[string][]float64 `yaml:"bounds"`
}

// LoadTables returns the compiled-in tables with the optional override file
// applied on top. An empty path means no override.
func LoadTables(path string) (Tables, error) {
	t := Tables{
		Catalog: domain.DefaultCatalog(),
		Pairs:   append([]domain.ExchangerPair(nil), domain.ExchangerPairs...),
		Bounds:  make(domain.BoundsTable, len(domain.RateBounds)),
	}
	for code, b := range domain.RateBounds {
		t.Bounds[code] = b
	}
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read catalog file: %w", err)
	}
	var ov catalogOverride
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return Tables{}, fmt.Errorf("parse catalog file: %w", err)
	}

	if len(ov.DisableSymbols) > 0 {
		drop := toSet(ov.DisableSymbols)
		for _, cat := range domain.Categories {
			kept := t.Catalog[cat][:0]
			for _, ins := range t.Catalog[cat] {
				if !drop[ins.Ticker] {
					kept = append(kept, ins)
				}
			}
			t.Catalog[cat] = kept
		}
	}

	if len(ov.DisableCurrencies) > 0 {
		drop := toSet(ov.DisableCurrencies)
		kept := t.Pairs[:0]
		for _, p := range t.Pairs {
			if !drop[p.Code] {
				kept = append(kept, p)
			}
		}
		t.Pairs = kept
	}

	codes := make([]string, 0, len(ov.Bounds))
	for code := range ov.Bounds {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if !registered(code) {
			return Tables{}, fmt.Errorf("bounds override %s: %w", code, domain.ErrUnsupportedCurrency)
		}
		b := ov.Bounds[code]
		if len(b) != 2 || b[0] <= 0 || b[0] >= b[1] {
			return Tables{}, fmt.Errorf("bounds override %s: want [low, high] with 0 < low < high", code)
		}
		t.Bounds[code] = domain.Bounds{Low: b[0], High: b[1]}
	}

	return t, nil
}

func registered(code string) bool {
	for _, p := range domain.ExchangerPairs {
		if p.Code == code {
			return true
		}
	}
	return false
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}
