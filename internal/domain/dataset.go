package domain

// SectionItem is one priced instrument inside a dataset section.
type SectionItem struct {
	Ticker   string  `json:"ticker"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Trend    float64 `json:"trend"`
	Currency *string `json:"currency"`
	Unit     *string `json:"unit"`
}

// BoundsRejection records a rate dropped during acquisition because it fell
// outside its sanity range.
type BoundsRejection struct {
	Code   string     `json:"code"`
	Rate   float64    `json:"rate"`
	Bounds [2]float64 `json:"bounds"`
}

// Deviation is a cross-check finding against the reference feed.
type Deviation struct {
	Scraped      float64 `json:"scraped"`
	Reference    float64 `json:"ecb"`
	DeviationPct float64 `json:"deviation_pct"`
}

// AcquisitionAudit is the per-run trail built while fetching exchanger
// rates. It is immutable once the run completes.
type AcquisitionAudit struct {
	RunID                string               `json:"run_id,omitempty"`
	TotalRequested       int                  `json:"total_requested"`
	Fetched              int                  `json:"fetched"`
	Validated            int                  `json:"validated"`
	BoundsRejected       []BoundsRejection    `json:"bounds_rejected"`
	FetchFailed          []string             `json:"fetch_failed"`
	CrossCheckDeviations map[string]Deviation `json:"cross_check_deviations"`
	CrossCheckSource     string               `json:"cross_check_source"`
	FinalCount           int                  `json:"final_count"`
}

// MarketDataset is the artifact one acquisition run persists and one audit
// run later reads. Rates always include the base currency at 1.0.
type MarketDataset struct {
	LastUpdate     string             `json:"last_update"`
	TotalItems     int                `json:"totalItems"`
	Indices        []SectionItem      `json:"indices"`
	Currencies     []SectionItem      `json:"currencies"`
	Energy         []SectionItem      `json:"energy"`
	Metals         []SectionItem      `json:"metals"`
	Agriculture    []SectionItem      `json:"agriculture"`
	Rates          map[string]float64 `json:"rates"`
	ExchangerAudit *AcquisitionAudit  `json:"exchanger_audit,omitempty"`
}

// Section returns the items stored under the given category.
func (d *MarketDataset) Section(c Category) []SectionItem {
	switch c {
	case CategoryIndices:
		return d.Indices
	case CategoryCurrencies:
		return d.Currencies
	case CategoryEnergy:
		return d.Energy
	case CategoryMetals:
		return d.Metals
	case CategoryAgriculture:
		return d.Agriculture
	}
	return nil
}

// SetSection stores the items under the given category.
func (d *MarketDataset) SetSection(c Category, items []SectionItem) {
	switch c {
	case CategoryIndices:
		d.Indices = items
	case CategoryCurrencies:
		d.Currencies = items
	case CategoryEnergy:
		d.Energy = items
	case CategoryMetals:
		d.Metals = items
	case CategoryAgriculture:
		d.Agriculture = items
	}
}
