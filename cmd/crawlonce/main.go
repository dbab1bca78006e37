// Command crawlonce runs a single crawl cycle and exits. Intended for cron
// setups and for seeding a fresh database.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"ubikais/mirror/internal/config"
	"ubikais/mirror/internal/crawler"
	"ubikais/mirror/internal/logging"
	"ubikais/mirror/internal/metrics"
	"ubikais/mirror/internal/snapshot"
	"ubikais/mirror/internal/store"
	"ubikais/mirror/internal/ubikais"
)

func main() {
	mode := flag.String("mode", "", "crawl mode: full or realtime (default CRAWL_MODE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	if *mode != "" {
		cfg.CrawlMode = *mode
	}
	if cfg.CrawlMode != "full" && cfg.CrawlMode != "realtime" {
		log.Fatalf("❌ mode must be 'full' or 'realtime', got %q", cfg.CrawlMode)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("❌ Failed to open store: %v", err)
	}
	defer st.Close()

	clock := clockwork.NewRealClock()

	snaps, err := snapshot.NewWriter(cfg.OutputDir, cfg.SnapshotRetention, clock)
	if err != nil {
		log.Fatalf("❌ Failed to prepare snapshot directory: %v", err)
	}

	client := ubikais.NewClient(ubikais.Options{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.RequestTimeout,
		Retries:    cfg.RetryCount,
		Backoff:    cfg.RetryBackoff,
		Rate:       cfg.RequestRate,
		JSessionID: cfg.SessionCookie,
		Scouter:    cfg.ScouterCookie,
	})

	cr := crawler.New(client, st, snaps, metrics.NewRegistry(), clock,
		crawler.NewStatusTracker(), cfg.FetchWorkers, cfg.CycleTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.CrawlMode == "full" {
		err = cr.RunFull(ctx)
	} else {
		err = cr.RunRealtime(ctx)
	}
	if err != nil {
		logging.Warn("crawl finished with failures", "error", err.Error())
		os.Exit(1)
	}
	logging.Info("crawl finished", "mode", cfg.CrawlMode)
}
