package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"marketdata-service/internal/application"
	"marketdata-service/internal/infrastructure/httpx"
)

const chartPath = "/v8/finance/chart/"

// YahooProvider reads daily closing prices from the Yahoo Finance chart
// endpoint. Calls are paced through the limiter so a full catalog run stays
// under the provider's informal rate ceiling.
type YahooProvider struct {
	BaseURL string
	Client  *httpx.Client
	Limiter *rate.Limiter
}

var _ application.QuoteProvider = (*YahooProvider)(nil)

type chartResp struct {
	Chart struct {
		Result []struct {
			Timestamps []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (p *YahooProvider) DailyCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("yahoo: invalid base url: %w", err)
	}
	u.Path = chartPath + symbol
	q := u.Query()
	q.Set("range", strconv.Itoa(days)+"d")
	q.Set("interval", "1d")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo: create request: %w", err)
	}

	var body chartResp
	if err := p.client().DoJSON(ctx, req, &body); err != nil {
		return nil, fmt.Errorf("yahoo: %s: %w", symbol, err)
	}
	if e := body.Chart.Error; e != nil {
		return nil, fmt.Errorf("yahoo: %s: %s: %s", symbol, e.Code, e.Description)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: %s: empty chart result", symbol)
	}
	quotes := body.Chart.Result[0].Indicators.Quote
	if len(quotes) == 0 {
		return nil, fmt.Errorf("yahoo: %s: no quote series", symbol)
	}

	// Sessions the exchange was closed come back as nulls; drop them and
	// keep the series order.
	closes := make([]float64, 0, len(quotes[0].Close))
	for _, c := range quotes[0].Close {
		if c == nil {
			continue
		}
		closes = append(closes, *c)
	}
	return closes, nil
}

func (p *YahooProvider) client() *httpx.Client {
	if p.Client != nil {
		return p.Client
	}
	return &httpx.Client{}
}
