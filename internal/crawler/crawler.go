// Package crawler runs crawl cycles against the UBIKAIS portal: fetch each
// data slice, map it into canonical rows, upsert it, and snapshot the raw
// payloads. Cycles never overlap and every failure is contained to the
// slice it occurred in.
package crawler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"ubikais/mirror/internal/logging"
	"ubikais/mirror/internal/mapper"
	"ubikais/mirror/internal/metrics"
	"ubikais/mirror/internal/models"
	"ubikais/mirror/internal/snapshot"
	"ubikais/mirror/internal/store"
	"ubikais/mirror/internal/ubikais"
)

// MainAirports are the high-traffic aerodromes covered by realtime cycles.
var MainAirports = []string{"RKSI", "RKSS", "RKPK", "RKPC", "RKPU"}

// AllAirports are all Korean aerodromes covered by full cycles.
var AllAirports = []string{
	"RKSI", "RKSS", "RKTU", "RKNY", "RKJK", "RKNW", "RKPC", "RKPK",
	"RKTN", "RKJJ", "RKJY", "RKPU", "RKTH", "RKPS", "RKJB", "RKTL",
}

// notamSeries are the NOTAM series crawled each full cycle.
var notamSeries = []string{"C", "A", "D"}

// ErrCycleInFlight is returned when a cycle is requested while one is
// already running.
var ErrCycleInFlight = errors.New("crawl cycle already in flight")

// Crawler executes crawl cycles. All store writes happen on the cycle
// goroutine; fetch fan-out never touches the database directly.
type Crawler struct {
	client  *ubikais.Client
	store   *store.Store
	snaps   *snapshot.Writer
	metrics *metrics.Registry
	clock   clockwork.Clock
	tracker *StatusTracker

	workers      int
	cycleTimeout time.Duration
	cycleSeq     atomic.Uint64
}

// New assembles a crawler.
func New(
	client *ubikais.Client,
	st *store.Store,
	snaps *snapshot.Writer,
	reg *metrics.Registry,
	clock clockwork.Clock,
	tracker *StatusTracker,
	workers int,
	cycleTimeout time.Duration,
) *Crawler {
	if workers < 1 {
		workers = 1
	}
	return &Crawler{
		client:       client,
		store:        st,
		snaps:        snaps,
		metrics:      reg,
		clock:        clock,
		tracker:      tracker,
		workers:      workers,
		cycleTimeout: cycleTimeout,
	}
}

// Status exposes the tracker for the status endpoint.
func (c *Crawler) Status() Status {
	return c.tracker.Snapshot()
}

// RunRealtime crawls the frequently-changing main-page data (departures,
// arrivals, weather summaries) for the main airports and snapshots it.
func (c *Crawler) RunRealtime(ctx context.Context) error {
	return c.runCycle(ctx, "realtime", func(ctx context.Context) bool {
		data := map[string]interface{}{
			"crawled_at": c.clock.Now().Format(time.RFC3339),
			"departures": map[string]interface{}{},
			"arrivals":   map[string]interface{}{},
			"weather":    map[string]interface{}{},
		}

		ok := true
		for _, apt := range MainAirports {
			if !c.collectMainAirport(ctx, apt, data) {
				ok = false
			}
		}

		if err := c.snaps.Write("realtime", data); err != nil {
			logging.Error("realtime snapshot failed", "error", err.Error())
			ok = false
		}
		return ok
	})
}

// RunFull crawls every category: NOTAMs, flight plans, weather, aerodrome
// reference data, and ATFM, persisting canonical rows and snapshots.
func (c *Crawler) RunFull(ctx context.Context) error {
	return c.runCycle(ctx, "full", func(ctx context.Context) bool {
		ok := true
		if !c.crawlNotams(ctx) {
			ok = false
		}
		if !c.crawlFlightPlans(ctx) {
			ok = false
		}
		if !c.crawlWeather(ctx) {
			ok = false
		}
		if !c.crawlAeroData(ctx) {
			ok = false
		}
		if !c.crawlATFM(ctx) {
			ok = false
		}
		return ok
	})
}

// runCycle enforces the re-entrancy guard and cycle deadline around one
// cycle body. A cycle "fails" only when every slice failed to produce data;
// partial upstream trouble is normal operation.
func (c *Crawler) runCycle(ctx context.Context, mode string, body func(context.Context) bool) error {
	if !c.tracker.begin() {
		logging.Warn("crawl cycle refused", "mode", mode, "reason", "already running")
		return ErrCycleInFlight
	}

	ctx, cancel := context.WithTimeout(ctx, c.cycleTimeout)
	defer cancel()

	start := c.clock.Now()
	log := logging.WithCycle(mode, c.cycleSeq.Add(1))
	log.Infow("crawl cycle starting")

	ok := body(ctx)

	elapsed := c.clock.Now().Sub(start)
	c.tracker.finish(ok, c.clock.Now())

	result := "success"
	if !ok {
		result = "error"
	}
	c.metrics.CrawlCyclesTotal.WithLabelValues(mode, result).Inc()
	c.metrics.CrawlCycleDuration.WithLabelValues(mode).Observe(elapsed.Seconds())

	log.Infow("crawl cycle finished", "result", result, "duration_ms", elapsed.Milliseconds())
	if !ok {
		return errors.New("crawl cycle completed with failures")
	}
	return nil
}

// collectMainAirport fetches the three main-page slices for one airport
// into the realtime snapshot payload.
func (c *Crawler) collectMainAirport(ctx context.Context, apt string, data map[string]interface{}) bool {
	ok := true

	if res, fetched := c.client.Fetch(ctx, ubikais.MainFlights("dep", apt)); fetched {
		data["departures"].(map[string]interface{})[apt] = res.Payload
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("main_departures").Inc()
		ok = false
	}
	if res, fetched := c.client.Fetch(ctx, ubikais.MainFlights("arr", apt)); fetched {
		data["arrivals"].(map[string]interface{})[apt] = res.Payload
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("main_arrivals").Inc()
		ok = false
	}
	if res, fetched := c.client.Fetch(ctx, ubikais.MainWeather(apt)); fetched {
		data["weather"].(map[string]interface{})[apt] = res.Payload
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("main_weather").Inc()
		ok = false
	}
	return ok
}

// crawlNotams covers FIR and aerodrome NOTAMs, SNOWTAMs, prohibited areas,
// and the sequence lists.
func (c *Crawler) crawlNotams(ctx context.Context) bool {
	now := c.clock.Now()
	anyData := false
	snap := map[string]interface{}{
		"fir":      map[string]interface{}{},
		"ad":       map[string]interface{}{},
		"sequence": map[string]interface{}{},
	}

	for _, series := range notamSeries {
		res, fetched := c.client.Fetch(ctx, ubikais.NotamFIR(series, now))
		if !fetched {
			c.metrics.FetchFailuresTotal.WithLabelValues("notam_fir").Inc()
			continue
		}
		anyData = true
		snap["fir"].(map[string]interface{})[series] = res.Payload

		rows, skipped := mapNotamFIR(res.Records())
		c.upsertCount("notam_fir", c.store.UpsertNotamFIR(ctx, rows), skipped)
	}

	for _, apt := range MainAirports {
		res, fetched := c.client.Fetch(ctx, ubikais.NotamAD(apt, "C", now))
		if !fetched {
			c.metrics.FetchFailuresTotal.WithLabelValues("notam_ad").Inc()
			continue
		}
		anyData = true
		snap["ad"].(map[string]interface{})[apt] = res.Payload

		rows, skipped := mapNotamAD(res.Records(), apt)
		c.upsertCount("notam_ad", c.store.UpsertNotamAD(ctx, rows), skipped)
	}

	if res, fetched := c.client.Fetch(ctx, ubikais.NotamSnow(now)); fetched {
		anyData = true
		snap["snow"] = res.Payload
		rows, skipped := mapSnowtam(res.Records())
		c.upsertCount("snowtam", c.store.UpsertSnowtam(ctx, rows), skipped)
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("snowtam").Inc()
	}

	if res, fetched := c.client.Fetch(ctx, ubikais.NotamProhibited("QRP", now)); fetched {
		anyData = true
		snap["prohibited"] = res.Payload
		rows, skipped := mapProhibited(res.Records())
		c.upsertCount("prohibited_area", c.store.UpsertProhibitedArea(ctx, rows), skipped)
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("prohibited_area").Inc()
	}

	// Sequence lists have no canonical table; snapshot only.
	for _, series := range notamSeries {
		if res, fetched := c.client.Fetch(ctx, ubikais.NotamSequence(series, now)); fetched {
			snap["sequence"].(map[string]interface{})[series] = res.Payload
		}
	}

	if err := c.snaps.Write("notam", snap); err != nil {
		logging.Error("notam snapshot failed", "error", err.Error())
	}
	return anyData
}

// crawlFlightPlans covers IFR departures/arrivals (persisted) plus VFR and
// ULP/LSA plans (snapshot only; they carry no direction tag).
func (c *Crawler) crawlFlightPlans(ctx context.Context) bool {
	now := c.clock.Now()
	crawlDate := now.Format("2006-01-02")
	anyData := false
	snap := map[string]interface{}{}

	if res, fetched := c.client.Fetch(ctx, ubikais.FlightPlanDepartures(now)); fetched {
		anyData = true
		snap["ifr_departures"] = res.Payload
		rows, skipped := mapFlightPlans(res.Records(), models.DirectionDeparture, crawlDate)
		c.upsertCount("flight_plans", c.store.UpsertFlightPlans(ctx, rows), skipped)
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("fpl_departures").Inc()
	}

	if res, fetched := c.client.Fetch(ctx, ubikais.FlightPlanArrivals(now)); fetched {
		anyData = true
		snap["ifr_arrivals"] = res.Payload
		rows, skipped := mapFlightPlans(res.Records(), models.DirectionArrival, crawlDate)
		c.upsertCount("flight_plans", c.store.UpsertFlightPlans(ctx, rows), skipped)
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("fpl_arrivals").Inc()
	}

	if res, fetched := c.client.Fetch(ctx, ubikais.FlightPlanVFR(now)); fetched {
		snap["vfr"] = res.Payload
	}
	if res, fetched := c.client.Fetch(ctx, ubikais.FlightPlanULP(now)); fetched {
		snap["ulp_lsa"] = res.Payload
	}

	if err := c.snaps.Write("flight_plans", snap); err != nil {
		logging.Error("flight plan snapshot failed", "error", err.Error())
	}
	return anyData
}

// crawlWeather covers METAR/TAF per main airport plus SIGMET.
func (c *Crawler) crawlWeather(ctx context.Context) bool {
	now := c.clock.Now()
	anyData := false
	snap := map[string]interface{}{
		"metar": map[string]interface{}{},
		"taf":   map[string]interface{}{},
	}

	for _, apt := range MainAirports {
		if res, fetched := c.client.Fetch(ctx, ubikais.Metar(apt, now, 2)); fetched {
			anyData = true
			snap["metar"].(map[string]interface{})[apt] = res.Payload
			rows, skipped := mapMetars(res.Records())
			c.upsertCount("metar", c.store.UpsertMetars(ctx, rows), skipped)
		} else {
			c.metrics.FetchFailuresTotal.WithLabelValues("metar").Inc()
		}

		if res, fetched := c.client.Fetch(ctx, ubikais.Taf(apt, now, 2)); fetched {
			anyData = true
			snap["taf"].(map[string]interface{})[apt] = res.Payload
			rows, skipped := mapTafs(res.Records())
			c.upsertCount("taf", c.store.UpsertTafs(ctx, rows), skipped)
		} else {
			c.metrics.FetchFailuresTotal.WithLabelValues("taf").Inc()
		}
	}

	if res, fetched := c.client.Fetch(ctx, ubikais.Sigmet(now)); fetched {
		anyData = true
		snap["sigmet"] = res.Payload
		rows, skipped := mapSigmets(res.Records())
		c.upsertCount("sigmet", c.store.UpsertSigmets(ctx, rows), skipped)
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("sigmet").Inc()
	}

	if err := c.snaps.Write("weather", snap); err != nil {
		logging.Error("weather snapshot failed", "error", err.Error())
	}
	return anyData
}

// aeroFetch is the per-airport result of the reference-data fan-out.
type aeroFetch struct {
	airport  string
	airports *ubikais.Result
	runways  *ubikais.Result
	aprons   *ubikais.Result
}

// crawlAeroData covers airport/runway/apron reference data for every
// airport, plus navaids and obstacles. Fetches fan out across airports
// under a concurrency cap; the client's limiter still paces every request,
// and all writes stay on the cycle goroutine.
func (c *Crawler) crawlAeroData(ctx context.Context) bool {
	now := c.clock.Now()

	var mu sync.Mutex
	fetches := make([]aeroFetch, 0, len(AllAirports))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for _, apt := range AllAirports {
		apt := apt
		g.Go(func() error {
			f := aeroFetch{airport: apt}
			if res, ok := c.client.Fetch(gctx, ubikais.AirportData(apt, now)); ok {
				f.airports = res
			} else {
				c.metrics.FetchFailuresTotal.WithLabelValues("airport").Inc()
			}
			if res, ok := c.client.Fetch(gctx, ubikais.RunwayData(apt, now)); ok {
				f.runways = res
			} else {
				c.metrics.FetchFailuresTotal.WithLabelValues("runway").Inc()
			}
			if res, ok := c.client.Fetch(gctx, ubikais.ApronData(apt, now)); ok {
				f.aprons = res
			} else {
				c.metrics.FetchFailuresTotal.WithLabelValues("apron").Inc()
			}
			mu.Lock()
			fetches = append(fetches, f)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	anyData := false
	snap := map[string]interface{}{
		"airports": map[string]interface{}{},
		"runways":  map[string]interface{}{},
		"aprons":   map[string]interface{}{},
	}

	for _, f := range fetches {
		if f.airports != nil {
			anyData = true
			snap["airports"].(map[string]interface{})[f.airport] = f.airports.Payload
			rows, skipped := mapAirports(airportRecords(f.airports))
			c.upsertCount("airports", c.store.UpsertAirports(ctx, rows), skipped)
		}
		if f.runways != nil {
			anyData = true
			snap["runways"].(map[string]interface{})[f.airport] = f.runways.Payload
			rows, skipped := mapRunways(f.runways.Records(), f.airport)
			c.upsertCount("runways", c.store.UpsertRunways(ctx, rows), skipped)
		}
		if f.aprons != nil {
			anyData = true
			snap["aprons"].(map[string]interface{})[f.airport] = f.aprons.Payload
			rows, skipped := mapAprons(f.aprons.Records(), f.airport)
			c.upsertCount("aprons", c.store.UpsertAprons(ctx, rows), skipped)
		}
	}

	if res, fetched := c.client.Fetch(ctx, ubikais.NavaidData(now)); fetched {
		anyData = true
		snap["navaids"] = res.Payload
		rows, skipped := mapNavaids(res.Records())
		c.upsertCount("navaids", c.store.UpsertNavaids(ctx, rows), skipped)
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("navaid").Inc()
	}

	if res, fetched := c.client.Fetch(ctx, ubikais.ObstacleData(now)); fetched {
		anyData = true
		snap["obstacles"] = res.Payload
		rows, skipped := mapObstacles(res.Records())
		c.upsertCount("obstacles", c.store.UpsertObstacles(ctx, rows), skipped)
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("obstacle").Inc()
	}

	if err := c.snaps.Write("aero_data", snap); err != nil {
		logging.Error("aero data snapshot failed", "error", err.Error())
	}
	return anyData
}

// crawlATFM covers flow-management plans and messages. Snapshot only; no
// canonical table exists for them.
func (c *Crawler) crawlATFM(ctx context.Context) bool {
	now := c.clock.Now()
	snap := map[string]interface{}{}
	anyData := false

	if res, fetched := c.client.Fetch(ctx, ubikais.ATFMDailyPlan(now)); fetched {
		anyData = true
		snap["daily_plan"] = res.Payload
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("atfm_adp").Inc()
	}
	if res, fetched := c.client.Fetch(ctx, ubikais.ATFMMessages(now)); fetched {
		anyData = true
		snap["messages"] = res.Payload
	} else {
		c.metrics.FetchFailuresTotal.WithLabelValues("atfm_messages").Inc()
	}

	if err := c.snaps.Write("atfm", snap); err != nil {
		logging.Error("atfm snapshot failed", "error", err.Error())
	}
	return anyData
}

func (c *Crawler) upsertCount(table string, written int, skipped int) {
	if written > 0 {
		c.metrics.RowsUpsertedTotal.WithLabelValues(table).Add(float64(written))
	}
	if skipped > 0 {
		c.metrics.RecordsSkippedTotal.WithLabelValues(table).Add(float64(skipped))
	}
	logging.Info("batch stored", "table", table, "written", written, "skipped", skipped)
}

// airportRecords handles the airport endpoint's habit of returning either a
// record list or a single object.
func airportRecords(res *ubikais.Result) []mapper.Record {
	if recs := res.Records(); len(recs) > 0 {
		return recs
	}
	if res.Payload != nil {
		return []mapper.Record{res.Payload}
	}
	return nil
}
