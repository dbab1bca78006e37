package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "./data/ubikais.db", cfg.DBPath)
	assert.Equal(t, "https://ubikais.fois.go.kr:8030", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.CrawlInterval)
	assert.Equal(t, 3, cfg.RetryCount)
	assert.Equal(t, 6, cfg.FullCrawlHour)
	assert.Equal(t, 24, cfg.SnapshotRetention)
	assert.Equal(t, "realtime", cfg.CrawlMode)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("CRAWL_INTERVAL", "1m")
	t.Setenv("RETRY_COUNT", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, time.Minute, cfg.CrawlInterval)
	assert.Equal(t, 5, cfg.RetryCount)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSExtraOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CRAWL_MODE", "hourly")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadFullCrawlHour(t *testing.T) {
	t.Setenv("FULL_CRAWL_HOUR", "25")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}
