package crawler

import (
	"sync"
	"time"
)

// Status is a point-in-time view of the crawl loop, exposed read-only to
// the status endpoint.
type Status struct {
	LastCrawl   *time.Time `json:"last_crawl"`
	LastSuccess bool       `json:"last_success"`
	CrawlCount  int64      `json:"crawl_count"`
	ErrorCount  int64      `json:"error_count"`
	Running     bool       `json:"running"`
}

// StatusTracker owns the mutable crawl state. The crawl loop writes it; all
// other readers get copies via Snapshot.
type StatusTracker struct {
	mu     sync.Mutex
	status Status
}

func NewStatusTracker() *StatusTracker {
	return &StatusTracker{status: Status{LastSuccess: true}}
}

// begin marks a cycle as started. It returns false when a cycle is already
// in flight; cycles must never overlap.
func (t *StatusTracker) begin() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status.Running {
		return false
	}
	t.status.Running = true
	return true
}

// finish records the cycle outcome.
func (t *StatusTracker) finish(ok bool, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Running = false
	t.status.LastCrawl = &at
	t.status.LastSuccess = ok
	if ok {
		t.status.CrawlCount++
	} else {
		t.status.ErrorCount++
	}
}

// Snapshot returns a copy of the current status.
func (t *StatusTracker) Snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}
