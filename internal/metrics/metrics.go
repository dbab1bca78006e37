package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all Prometheus metrics for the mirror.
type Registry struct {
	// HTTP metrics
	HTTPRequestsTotal   prometheus.CounterVec
	HTTPRequestDuration prometheus.HistogramVec

	// Crawl metrics
	CrawlCyclesTotal    prometheus.CounterVec
	CrawlCycleDuration  prometheus.HistogramVec
	FetchFailuresTotal  prometheus.CounterVec
	RowsUpsertedTotal   prometheus.CounterVec
	RecordsSkippedTotal prometheus.CounterVec
}

// NewRegistry initializes and returns a Registry with all metrics registered.
func NewRegistry() *Registry {
	return &Registry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ubikais_mirror_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ubikais_mirror_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"endpoint", "method"},
		),
		CrawlCyclesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ubikais_mirror_crawl_cycles_total",
				Help: "Completed crawl cycles by mode and result",
			},
			[]string{"mode", "result"},
		),
		CrawlCycleDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ubikais_mirror_crawl_cycle_duration_seconds",
				Help:    "Crawl cycle execution time in seconds",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600, 1200},
			},
			[]string{"mode"},
		),
		FetchFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ubikais_mirror_fetch_failures_total",
				Help: "Upstream fetches that failed after all retries, by category",
			},
			[]string{"category"},
		),
		RowsUpsertedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ubikais_mirror_rows_upserted_total",
				Help: "Rows written to the store by table",
			},
			[]string{"table"},
		),
		RecordsSkippedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ubikais_mirror_records_skipped_total",
				Help: "Upstream records skipped for missing natural keys, by table",
			},
			[]string{"table"},
		),
	}
}
