package domain

// Category identifies one instrument section of the market dataset.
type Category string

const (
	CategoryIndices     Category = "indices"
	CategoryCurrencies  Category = "currencies"
	CategoryEnergy      Category = "energy"
	CategoryMetals      Category = "metals"
	CategoryAgriculture Category = "agriculture"
)

// Categories lists the dataset sections in emission order.
var Categories = []Category{
	CategoryIndices,
	CategoryCurrencies,
	CategoryEnergy,
	CategoryMetals,
	CategoryAgriculture,
}

// Instrument is one catalog entry resolved against the quote provider.
// Unit and Currency are display metadata; empty means not applicable.
type Instrument struct {
	Ticker   string
	Name     string
	Unit     string
	Currency string
}

// Catalog is the per-category instrument registry.
type Catalog map[Category][]Instrument

// DefaultCatalog returns the built-in instrument registry. Callers get a
// fresh copy and may trim it without affecting the defaults.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(defaultCatalog))
	for cat, list := range defaultCatalog {
		c[cat] = append([]Instrument(nil), list...)
	}
	return c
}

var defaultCatalog = Catalog{
	CategoryIndices: {
		{Ticker: "^GSPC", Name: "S&P 500", Unit: "pts"},
		{Ticker: "^DJI", Name: "Dow Jones", Unit: "pts"},
		{Ticker: "^IXIC", Name: "Nasdaq", Unit: "pts"},
		{Ticker: "^STOXX50E", Name: "Euro Stoxx 50", Unit: "pts"},
		{Ticker: "^FTSE", Name: "FTSE 100", Unit: "pts"},
		{Ticker: "^N225", Name: "Nikkei 225", Unit: "pts"},
	},
	CategoryCurrencies: {
		{Ticker: "EURUSD=X", Name: "EUR / USD"},
		{Ticker: "USDJPY=X", Name: "USD / JPY"},
		{Ticker: "GBPUSD=X", Name: "GBP / USD"},
		{Ticker: "USDCNY=X", Name: "USD / CNY"},
		{Ticker: "DX-Y.NYB", Name: "US Dollar Index", Unit: "pts"},
		{Ticker: "USDMAD=X", Name: "USD / MAD"},
		{Ticker: "EURMAD=X", Name: "EUR / MAD"},
		{Ticker: "GBPMAD=X", Name: "GBP / MAD"},
	},
	CategoryEnergy: {
		{Ticker: "BZ=F", Name: "Brent Crude", Unit: "USD/bbl", Currency: "USD"},
		{Ticker: "CL=F", Name: "WTI Crude", Unit: "USD/bbl", Currency: "USD"},
		{Ticker: "NG=F", Name: "Natural Gas", Unit: "USD/MMBtu", Currency: "USD"},
		{Ticker: "HO=F", Name: "Heating Oil", Unit: "USD/gal", Currency: "USD"},
		{Ticker: "RB=F", Name: "Gasoline (RBOB)", Unit: "USD/gal", Currency: "USD"},
	},
	CategoryMetals: {
		{Ticker: "GC=F", Name: "Gold", Unit: "USD/oz", Currency: "USD"},
		{Ticker: "SI=F", Name: "Silver", Unit: "USD/oz", Currency: "USD"},
		{Ticker: "HG=F", Name: "Copper", Unit: "USD/lb", Currency: "USD"},
		{Ticker: "ALI=F", Name: "Aluminium", Unit: "USD/t", Currency: "USD"},
		{Ticker: "PL=F", Name: "Platinum", Unit: "USD/oz", Currency: "USD"},
		{Ticker: "PA=F", Name: "Palladium", Unit: "USD/oz", Currency: "USD"},
	},
	CategoryAgriculture: {
		{Ticker: "SB=F", Name: "Sugar #11", Unit: "¢/lb"},
		{Ticker: "KC=F", Name: "Coffee", Unit: "¢/lb"},
		{Ticker: "CT=F", Name: "Cotton #2", Unit: "¢/lb"},
		{Ticker: "ZW=F", Name: "Wheat", Unit: "¢/bu"},
		{Ticker: "ZC=F", Name: "Corn", Unit: "¢/bu"},
		{Ticker: "ZS=F", Name: "Soybeans", Unit: "¢/bu"},
	},
}
