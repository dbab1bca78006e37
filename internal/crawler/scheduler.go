package crawler

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"ubikais/mirror/internal/logging"
)

// Scheduler drives the crawler on a fixed interval. Each tick runs a
// realtime cycle; once per day, at FullCrawlHour, the tick runs a full
// cycle instead. An initial full cycle runs at startup so the store is
// never empty.
type Scheduler struct {
	crawler       *Crawler
	clock         clockwork.Clock
	interval      time.Duration
	fullCrawlHour int

	lastFullDate string
}

// NewScheduler creates a scheduler. fullCrawlHour is the local hour (0-23)
// at which the daily full cycle runs.
func NewScheduler(c *Crawler, clock clockwork.Clock, interval time.Duration, fullCrawlHour int) *Scheduler {
	return &Scheduler{
		crawler:       c,
		clock:         clock,
		interval:      interval,
		fullCrawlHour: fullCrawlHour,
	}
}

// Run blocks until ctx is cancelled, executing cycles on each tick.
func (s *Scheduler) Run(ctx context.Context) {
	logging.Info("scheduler starting",
		"interval", s.interval.String(),
		"full_crawl_hour", s.fullCrawlHour,
	)

	// Startup cycle so queries have data immediately.
	s.runOnce(ctx, true)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("scheduler stopping")
			return
		case <-ticker.Chan():
			s.runOnce(ctx, s.fullDue())
		}
	}
}

// fullDue reports whether the daily full cycle should run on this tick.
func (s *Scheduler) fullDue() bool {
	now := s.clock.Now()
	if now.Hour() != s.fullCrawlHour {
		return false
	}
	return s.lastFullDate != now.Format("2006-01-02")
}

func (s *Scheduler) runOnce(ctx context.Context, full bool) {
	if full {
		if err := s.crawler.RunFull(ctx); err != nil {
			logging.Warn("full cycle error", "error", err.Error())
			return
		}
		s.lastFullDate = s.clock.Now().Format("2006-01-02")
		return
	}
	if err := s.crawler.RunRealtime(ctx); err != nil {
		logging.Warn("realtime cycle error", "error", err.Error())
	}
}
