package provider_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"marketdata-service/internal/infrastructure/httpx"
	"marketdata-service/internal/infrastructure/provider"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpClient(resBody string, code int) *http.Client {
	return &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: code,
			Body:       io.NopCloser(strings.NewReader(resBody)),
			Header:     make(http.Header),
		}, nil
	})}
}

const chartBody = `{
  "chart": {
    "result": [
      {
        "timestamp": [1770681600, 1770768000, 1770854400],
        "indicators": {
          "quote": [
            {"close": [1.07, null, 1.08]}
          ]
        }
      }
    ],
    "error": null
  }
}`

func TestYahooProvider_DailyCloses(t *testing.T) {
	t.Parallel()

	var got *http.Request
	client := &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		got = r
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(chartBody)),
			Header:     make(http.Header),
		}, nil
	})}

	p := &provider.YahooProvider{
		BaseURL: "https://query1.finance.yahoo.com",
		Client:  &httpx.Client{HTTP: client, UserAgent: "marketdata/1.0"},
	}

	closes, err := p.DailyCloses(context.Background(), "EURUSD=X", 5)
	require.NoError(t, err)
	require.Equal(t, []float64{1.07, 1.08}, closes)

	require.Equal(t, "/v8/finance/chart/EURUSD=X", got.URL.Path)
	require.Equal(t, "5d", got.URL.Query().Get("range"))
	require.Equal(t, "1d", got.URL.Query().Get("interval"))
	require.Equal(t, "marketdata/1.0", got.Header.Get("User-Agent"))
}

func TestYahooProvider_APIError(t *testing.T) {
	t.Parallel()

	body := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`
	p := &provider.YahooProvider{
		BaseURL: "https://query1.finance.yahoo.com",
		Client:  &httpx.Client{HTTP: httpClient(body, http.StatusOK)},
	}

	_, err := p.DailyCloses(context.Background(), "BOGUS=X", 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "BOGUS=X")
	require.Contains(t, err.Error(), "delisted")
}

func TestYahooProvider_HTTPStatusError(t *testing.T) {
	t.Parallel()

	p := &provider.YahooProvider{
		BaseURL: "https://query1.finance.yahoo.com",
		Client:  &httpx.Client{HTTP: httpClient("too many requests", http.StatusTooManyRequests)},
	}

	_, err := p.DailyCloses(context.Background(), "GC=F", 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestYahooProvider_EmptyResult(t *testing.T) {
	t.Parallel()

	p := &provider.YahooProvider{
		BaseURL: "https://query1.finance.yahoo.com",
		Client:  &httpx.Client{HTTP: httpClient(`{"chart":{"result":[],"error":null}}`, http.StatusOK)},
	}

	_, err := p.DailyCloses(context.Background(), "^GSPC", 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty chart result")
}

func TestFake_ReturnsSameSeriesForAnySymbol(t *testing.T) {
	t.Parallel()

	f := provider.NewFake(100, 101.5)

	a, err := f.DailyCloses(context.Background(), "^GSPC", 5)
	require.NoError(t, err)
	b, err := f.DailyCloses(context.Background(), "GC=F", 5)
	require.NoError(t, err)

	require.Equal(t, []float64{100, 101.5}, a)
	require.Equal(t, a, b)

	// Callers may mutate the returned slice without corrupting the fake.
	a[0] = -1
	c, err := f.DailyCloses(context.Background(), "^GSPC", 5)
	require.NoError(t, err)
	require.Equal(t, 100.0, c[0])
}
