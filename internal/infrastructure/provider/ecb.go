package provider

import (
	"context"
	"fmt"
	"net/http"

	"marketdata-service/internal/application"
	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/httpx"
)

// ECBProvider fetches the European Central Bank daily reference rates and
// rebases them from EUR to USD.
type ECBProvider struct {
	URL    string
	Client *httpx.Client
}

var _ application.ReferenceProvider = (*ECBProvider)(nil)

type ecbEnvelope struct {
	Cubes []ecbCube `xml:"Cube>Cube>Cube"`
}

type ecbCube struct {
	Currency string  `xml:"currency,attr"`
	Rate     float64 `xml:"rate,attr"`
}

func (p *ECBProvider) USDRates(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("ecb: create request: %w", err)
	}

	var env ecbEnvelope
	if err := p.client().DoXML(ctx, req, &env); err != nil {
		return nil, fmt.Errorf("ecb: %w", err)
	}

	eur := map[string]float64{"EUR": 1.0}
	for _, c := range env.Cubes {
		eur[c.Currency] = c.Rate
	}

	// Without a USD quote the feed cannot be rebased. Callers treat an empty
	// set as "cross-check unavailable".
	usd, ok := eur["USD"]
	if !ok || usd <= 0 {
		return map[string]float64{}, nil
	}

	out := map[string]float64{"USD": 1.0}
	for code, v := range eur {
		if code == "USD" {
			continue
		}
		out[code] = domain.Round(v/usd, 6)
	}
	return out, nil
}

func (p *ECBProvider) client() *httpx.Client {
	if p.Client != nil {
		return p.Client
	}
	return &httpx.Client{}
}
