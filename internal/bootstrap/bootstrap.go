package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"marketdata-service/internal/application"
	"marketdata-service/internal/config"
	"marketdata-service/internal/infrastructure/httpx"
	"marketdata-service/internal/infrastructure/provider"
	"marketdata-service/internal/infrastructure/publish"
	redisstore "marketdata-service/internal/infrastructure/redis"
	"marketdata-service/internal/infrastructure/store"
)

// BuildStore returns the artifact store rooted at cfg.DataDir.
func BuildStore(cfg config.Config) *store.FileStore {
	return store.NewFileStore(cfg.DataDir)
}

// BuildQuoteProvider selects the quote source. "fake" serves canned closes
// for offline runs.
func BuildQuoteProvider(cfg config.Config) application.QuoteProvider {
	switch cfg.Provider {
	case "fake":
		return provider.NewFake(100, 101)
	default:
		return &provider.YahooProvider{
			BaseURL: cfg.ProviderBaseURL,
			Client:  httpx.New(cfg.ProviderTimeout, cfg.UserAgent),
			Limiter: rate.NewLimiter(rate.Limit(cfg.ProviderRPS), 1),
		}
	}
}

// BuildReferenceProvider returns the cross-check feed, nil when disabled.
func BuildReferenceProvider(cfg config.Config) application.ReferenceProvider {
	if cfg.ReferenceURL == "" || cfg.ReferenceURL == "none" {
		return nil
	}
	return &provider.ECBProvider{
		URL:    cfg.ReferenceURL,
		Client: httpx.New(cfg.ReferenceTimeout, cfg.UserAgent),
	}
}

// BuildRunLock builds the scrape lock based on LOCK_BACKEND.
func BuildRunLock(cfg config.Config) (application.RunLock, func()) {
	if cfg.LockBackend != "redis" {
		return application.NoopLock{}, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return redisstore.New(client, cfg.LockTTL), func() { _ = client.Close() }
}

// BuildPublisher returns the artifact mirror, Noop when S3 is not configured.
// Without explicit keys, credentials come from the ambient AWS environment.
func BuildPublisher(ctx context.Context, cfg config.Config) (application.Publisher, error) {
	if cfg.S3Bucket == "" {
		return application.NoopPublisher{}, nil
	}
	p, err := publish.NewS3Publisher(ctx, publish.S3Options{
		Bucket:          cfg.S3Bucket,
		Prefix:          cfg.S3Prefix,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		PathStyle:       cfg.S3PathStyle,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		return nil, fmt.Errorf("build publisher: %w", err)
	}
	return p, nil
}

// BuildTables loads the acquisition tables with any CATALOG_FILE override.
func BuildTables(cfg config.Config) (config.Tables, error) {
	return config.LoadTables(cfg.CatalogFile)
}
