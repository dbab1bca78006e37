package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	AppEnv     string
	ListenAddr string

	DBPath    string
	OutputDir string

	BaseURL       string
	SessionCookie string
	ScouterCookie string

	RequestTimeout time.Duration
	RetryCount     int
	RetryBackoff   time.Duration
	RequestRate    float64
	FetchWorkers   int

	CrawlMode     string
	CrawlInterval time.Duration
	FullCrawlHour int
	CycleTimeout  time.Duration

	SnapshotRetention int

	CORSExtraOrigins []string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:     envOrDefault("APP_ENV", "development"),
		ListenAddr: envOrDefault("LISTEN_ADDR", ":8080"),
		DBPath:     envOrDefault("UBIKAIS_DB_PATH", "./data/ubikais.db"),
		OutputDir:  envOrDefault("UBIKAIS_OUTPUT_DIR", "./data"),
		BaseURL:    envOrDefault("UBIKAIS_BASE_URL", "https://ubikais.fois.go.kr:8030"),

		SessionCookie: os.Getenv("UBIKAIS_JSESSIONID"),
		ScouterCookie: os.Getenv("UBIKAIS_SCOUTER"),

		CrawlMode: envOrDefault("CRAWL_MODE", "realtime"),
	}

	var err error
	if cfg.RequestTimeout, err = parseDuration("REQUEST_TIMEOUT", "30s"); err != nil {
		return nil, err
	}
	if cfg.RetryBackoff, err = parseDuration("RETRY_BACKOFF", "2s"); err != nil {
		return nil, err
	}
	if cfg.CrawlInterval, err = parseDuration("CRAWL_INTERVAL", "300s"); err != nil {
		return nil, err
	}
	if cfg.CycleTimeout, err = parseDuration("CYCLE_TIMEOUT", "20m"); err != nil {
		return nil, err
	}

	cfg.RetryCount = parseInt("RETRY_COUNT", 3)
	cfg.FullCrawlHour = parseInt("FULL_CRAWL_HOUR", 6)
	cfg.SnapshotRetention = parseInt("SNAPSHOT_RETENTION", 24)
	cfg.FetchWorkers = parseInt("FETCH_WORKERS", 1)
	cfg.RequestRate = parseFloat("REQUEST_RATE", 2.0)

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSExtraOrigins = append(cfg.CORSExtraOrigins, o)
			}
		}
	}

	if cfg.CrawlMode != "full" && cfg.CrawlMode != "realtime" {
		return nil, errors.New("CRAWL_MODE must be 'full' or 'realtime'")
	}
	if cfg.FullCrawlHour < 0 || cfg.FullCrawlHour > 23 {
		return nil, errors.New("FULL_CRAWL_HOUR must be 0-23")
	}
	if cfg.RetryCount < 1 {
		return nil, errors.New("RETRY_COUNT must be at least 1")
	}
	if cfg.SnapshotRetention < 1 {
		return nil, errors.New("SNAPSHOT_RETENTION must be at least 1")
	}
	if cfg.FetchWorkers < 1 {
		return nil, errors.New("FETCH_WORKERS must be at least 1")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

func parseFloat(key string, def float64) float64 {
	if s := os.Getenv(key); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}
