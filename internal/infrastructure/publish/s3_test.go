package publish_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"marketdata-service/internal/domain"
	"marketdata-service/internal/infrastructure/publish"
)

func TestS3Publisher_PublishDataset(t *testing.T) {
	t.Parallel()

	var (
		gotMethod string
		gotPath   string
		gotBody   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p, err := publish.NewS3Publisher(context.Background(), publish.S3Options{
		Bucket:          "market-artifacts",
		Prefix:          "prod",
		Region:          "eu-west-1",
		Endpoint:        srv.URL,
		PathStyle:       true,
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	})
	require.NoError(t, err)

	ds := &domain.MarketDataset{
		LastUpdate: "2026-02-11T09:00:00Z",
		Rates:      map[string]float64{"USD": 1.0},
	}
	require.NoError(t, p.PublishDataset(context.Background(), ds))

	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/market-artifacts/prod/market_data.json", gotPath)
	require.True(t, strings.Contains(gotBody, `"last_update": "2026-02-11T09:00:00Z"`))
}

func TestS3Publisher_PublishReport(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p, err := publish.NewS3Publisher(context.Background(), publish.S3Options{
		Bucket:          "market-artifacts",
		Region:          "eu-west-1",
		Endpoint:        srv.URL,
		PathStyle:       true,
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	})
	require.NoError(t, err)

	r := &domain.AuditReport{Timestamp: "2026-02-11T09:00:00Z", Status: domain.StatusPass}
	require.NoError(t, p.PublishReport(context.Background(), r))
	require.Equal(t, "/market-artifacts/audit_report.json", gotPath)
}

func TestS3Publisher_RequiresBucket(t *testing.T) {
	t.Parallel()

	_, err := publish.NewS3Publisher(context.Background(), publish.S3Options{Region: "eu-west-1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bucket required")
}

func TestS3Publisher_UploadFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "access denied", http.StatusForbidden)
	}))
	defer srv.Close()

	p, err := publish.NewS3Publisher(context.Background(), publish.S3Options{
		Bucket:          "market-artifacts",
		Region:          "eu-west-1",
		Endpoint:        srv.URL,
		PathStyle:       true,
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	})
	require.NoError(t, err)

	err = p.PublishDataset(context.Background(), &domain.MarketDataset{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "upload market_data.json")
}
