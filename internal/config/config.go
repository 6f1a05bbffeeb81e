package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	DataDir  string
	// API
	Port string
	// Quote provider
	Provider        string
	ProviderBaseURL string
	ProviderTimeout time.Duration
	ProviderRPS     int
	WindowDays      int
	UserAgent       string
	// Reference feed
	ReferenceURL     string
	ReferenceTimeout time.Duration
	// Scraper
	ScrapeEvery   time.Duration
	RetryAttempts int
	RetryBase     time.Duration
	CatalogFile   string
	// Run lock
	LockBackend   string
	LockTTL       time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// S3 mirror
	S3Bucket          string
	S3Prefix          string
	S3Region          string
	S3Endpoint        string
	S3PathStyle       bool
	S3AccessKeyID     string
	S3SecretAccessKey string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func msDef(key string, def int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, ""), def)) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:              getEnv("ENV", "local"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DataDir:          getEnv("DATA_DIR", "."),
		Port:             getEnv("PORT", "8080"),
		Provider:         getEnv("PROVIDER", "yahoo"),
		ProviderBaseURL:  getEnv("PROVIDER_BASE_URL", "https://query1.finance.yahoo.com"),
		ProviderTimeout:  msDef("PROVIDER_TIMEOUT_MS", 15000),
		ProviderRPS:      atoiDef(getEnv("PROVIDER_RPS", "2"), 2),
		WindowDays:       atoiDef(getEnv("WINDOW_DAYS", "5"), 5),
		UserAgent:        getEnv("USER_AGENT", "marketdata-scraper/1.0"),
		ReferenceURL:     getEnv("REFERENCE_URL", "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"),
		ReferenceTimeout: msDef("REFERENCE_TIMEOUT_MS", 10000),
		ScrapeEvery:      msDef("SCRAPE_EVERY_MS", 0),
		RetryAttempts:    atoiDef(getEnv("RETRY_ATTEMPTS", "3"), 3),
		RetryBase:        msDef("RETRY_BASE_MS", 2000),
		CatalogFile:      getEnv("CATALOG_FILE", ""),
		LockBackend:      getEnv("LOCK_BACKEND", "none"),
		LockTTL:          msDef("LOCK_TTL_MS", 600000),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          atoiDef(getEnv("REDIS_DB", "0"), 0),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Prefix:          getEnv("S3_PREFIX", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3PathStyle:       getEnv("S3_PATH_STYLE", "") == "true",
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
	}
}
