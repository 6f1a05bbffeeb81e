package domain

// BaseCurrency anchors the rate table. It is never fetched and its rate is
// fixed at exactly 1.0.
const BaseCurrency = "USD"

// ExchangerPair binds a currency code to the provider symbol that quotes it.
// Invert marks symbols natively quoted as code/USD instead of USD/code.
type ExchangerPair struct {
	Code   string
	Symbol string
	Invert bool
}

// ExchangerPairs is the acquisition registry in fetch order. The base
// currency is excluded, see BaseCurrency.
var ExchangerPairs = []ExchangerPair{
	{Code: "EUR", Symbol: "EURUSD=X", Invert: true},
	{Code: "GBP", Symbol: "GBPUSD=X", Invert: true},
	{Code: "JPY", Symbol: "USDJPY=X"},
	{Code: "CAD", Symbol: "USDCAD=X"},
	{Code: "AUD", Symbol: "AUDUSD=X", Invert: true},
	{Code: "CNY", Symbol: "USDCNY=X"},
	{Code: "CHF", Symbol: "USDCHF=X"},
	{Code: "HKD", Symbol: "USDHKD=X"},
	{Code: "SGD", Symbol: "USDSGD=X"},
	{Code: "SEK", Symbol: "USDSEK=X"},
	{Code: "KRW", Symbol: "USDKRW=X"},
	{Code: "NOK", Symbol: "USDNOK=X"},
	{Code: "NZD", Symbol: "NZDUSD=X", Invert: true},
	{Code: "INR", Symbol: "USDINR=X"},
	{Code: "MXN", Symbol: "USDMXN=X"},
	{Code: "TWD", Symbol: "USDTWD=X"},
	{Code: "ZAR", Symbol: "USDZAR=X"},
	{Code: "BRL", Symbol: "USDBRL=X"},
	{Code: "DKK", Symbol: "USDDKK=X"},
	{Code: "PLN", Symbol: "USDPLN=X"},
	{Code: "THB", Symbol: "USDTHB=X"},
	{Code: "IDR", Symbol: "USDIDR=X"},
	{Code: "HUF", Symbol: "USDHUF=X"},
	{Code: "CZK", Symbol: "USDCZK=X"},
	{Code: "ILS", Symbol: "USDILS=X"},
	{Code: "CLP", Symbol: "USDCLP=X"},
	{Code: "PHP", Symbol: "USDPHP=X"},
	{Code: "AED", Symbol: "USDAED=X"},
	{Code: "COP", Symbol: "USDCOP=X"},
	{Code: "SAR", Symbol: "USDSAR=X"},
	{Code: "MYR", Symbol: "USDMYR=X"},
	{Code: "RON", Symbol: "USDRON=X"},
	{Code: "MAD", Symbol: "USDMAD=X"},
}

// RequiredCurrencies must all be present for an audited rate table to count
// as complete.
var RequiredCurrencies = []string{"EUR", "GBP", "JPY", "CNY", "CHF", "CAD", "MAD"}
