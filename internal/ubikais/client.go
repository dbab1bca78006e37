// Package ubikais speaks the reverse-engineered UBIKAIS portal API. The
// portal exposes no documented contract; each endpoint's query-parameter
// shape was discovered by network inspection and lives in its own adapter so
// upstream drift stays a localized failure.
package ubikais

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"ubikais/mirror/internal/logging"
	"ubikais/mirror/internal/mapper"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// Diagnostic cap for undecodable bodies.
	rawBodyLimit = 500
)

// Client issues authenticated GETs against UBIKAIS with bounded retries and
// per-host pacing. Authentication is a session cookie established outside
// this component; an expired session just yields repeated failures until an
// external re-login supplies fresh cookies.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	backoff    time.Duration
	limiter    *rate.Limiter

	jsessionID string
	scouter    string
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	Backoff    time.Duration
	Rate       float64 // requests per second toward the portal
	JSessionID string
	Scouter    string
}

// NewClient creates a portal client.
func NewClient(opts Options) *Client {
	if opts.Retries < 1 {
		opts.Retries = 1
	}
	if opts.Rate <= 0 {
		opts.Rate = 2
	}
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		retries:    opts.Retries,
		backoff:    opts.Backoff,
		limiter:    rate.NewLimiter(rate.Limit(opts.Rate), 1),
		jsessionID: opts.JSessionID,
		scouter:    opts.Scouter,
	}
}

// SetSession replaces the session cookies, for external re-login flows.
func (c *Client) SetSession(jsessionID, scouter string) {
	c.jsessionID = jsessionID
	c.scouter = scouter
}

// Result is one fetched payload. When the body was not valid JSON, Payload
// is nil and Raw carries the truncated body for diagnostics.
type Result struct {
	Payload map[string]interface{}
	Raw     string
}

// Records extracts the record list most UBIKAIS endpoints wrap their data
// in. Missing or differently-shaped payloads yield an empty slice.
func (r *Result) Records() []mapper.Record {
	if r == nil || r.Payload == nil {
		return nil
	}
	list, ok := r.Payload["records"].([]interface{})
	if !ok {
		if list, ok = r.Payload["data"].([]interface{}); !ok {
			return nil
		}
	}
	out := make([]mapper.Record, 0, len(list))
	for _, item := range list {
		if rec, ok := item.(mapper.Record); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Fetch executes one endpoint request. Transient failures (network errors,
// non-200 statuses) are retried with linearly increasing backoff; after the
// last attempt the second return value is false so the calling crawl step
// can skip this slice and continue. A response body that is not JSON is not
// a failure: it returns a Result carrying the truncated body.
func (c *Client) Fetch(ctx context.Context, ep Endpoint) (*Result, bool) {
	u := c.baseURL + ep.Path
	if enc := ep.Params.Encode(); enc != "" {
		u += "?" + enc
	}

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, false
			case <-time.After(time.Duration(attempt-1) * c.backoff):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, false
		}

		result, err := c.do(ctx, u, ep.Referer)
		if err == nil {
			return result, true
		}
		lastErr = err
		logging.Warn("fetch attempt failed",
			"endpoint", ep.Path,
			"attempt", attempt,
			"error", err.Error(),
		)
	}

	logging.Error("fetch exhausted retries",
		"endpoint", ep.Path,
		"retries", c.retries,
		"error", fmt.Sprintf("%v", lastErr),
	)
	return nil, false
}

func (c *Client) do(ctx context.Context, url, referer string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if referer != "" {
		req.Header.Set("Referer", c.baseURL+referer)
	}
	if c.jsessionID != "" {
		req.AddCookie(&http.Cookie{Name: "JSESSIONID", Value: c.jsessionID})
	}
	if c.scouter != "" {
		req.AddCookie(&http.Cookie{Name: "SCOUTER", Value: c.scouter})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		raw := string(body)
		if len(raw) > rawBodyLimit {
			raw = raw[:rawBodyLimit]
		}
		return &Result{Raw: raw}, nil
	}
	return &Result{Payload: payload}, nil
}
