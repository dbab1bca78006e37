package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"ubikais/mirror/internal/config"
	"ubikais/mirror/internal/crawler"
	"ubikais/mirror/internal/logging"
	"ubikais/mirror/internal/metrics"
	"ubikais/mirror/internal/routes"
	"ubikais/mirror/internal/snapshot"
	"ubikais/mirror/internal/store"
	"ubikais/mirror/internal/ubikais"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("UBIKAIS mirror starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logging.Error("Failed to open store", "error", err.Error())
		log.Fatalf("❌ Failed to open store: %v", err)
	}
	defer st.Close()
	logging.Info("Connected to SQLite", "path", cfg.DBPath)

	clock := clockwork.NewRealClock()

	snaps, err := snapshot.NewWriter(cfg.OutputDir, cfg.SnapshotRetention, clock)
	if err != nil {
		logging.Error("Failed to prepare snapshot directory", "error", err.Error())
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

	metricsReg := metrics.NewRegistry()
	tracker := crawler.NewStatusTracker()
	cr := crawler.New(client, st, snaps, metricsReg, clock, tracker, cfg.FetchWorkers, cfg.CycleTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := crawler.NewScheduler(cr, clock, cfg.CrawlInterval, cfg.FullCrawlHour)
	go scheduler.Run(ctx)

	upSince := time.Now()
	router := routes.RegisterRoutes(cfg, st, cr, metricsReg, upSince)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		logging.Info("Server starting", "addr", cfg.ListenAddr, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Server failed", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	logging.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Warn("Server shutdown error", "error", err.Error())
	}
	logging.Info("Server stopped")
}
