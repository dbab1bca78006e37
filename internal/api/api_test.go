package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubikais/mirror/internal/common"
	"ubikais/mirror/internal/crawler"
	"ubikais/mirror/internal/logging"
	"ubikais/mirror/internal/metrics"
	"ubikais/mirror/internal/models"
	"ubikais/mirror/internal/store"
)

var testMetrics = metrics.NewRegistry()

func init() {
	_ = logging.Init("test")
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	ctx := context.Background()
	st.UpsertFlightPlans(ctx, []*models.FlightPlan{
		{Callsign: "KAL123", Registration: "HL8080", DepartureICAO: "RKSI", ArrivalICAO: "RJTT",
			Route: "EGOBA Y697", DepartureTime: "0900", Direction: models.DirectionDeparture, CrawledDate: "2026-08-30"},
		{Callsign: "AAR456", ArrivalICAO: "RKPK", ArrivalTime: "1100",
			DepartureTime: "0800", Direction: models.DirectionArrival, CrawledDate: "2026-08-30"},
	})
	st.UpsertMetars(ctx, []*models.Metar{
		{AirportICAO: "RKSI", ObservationTime: "202608300900", RawMetar: "METAR RKSI 300900Z"},
	})
	st.UpsertTafs(ctx, []*models.Taf{
		{AirportICAO: "RKSI", IssueTime: "202608300800", RawTaf: "TAF RKSI 300800Z"},
	})
	st.UpsertNotamFIR(ctx, []*models.NotamFIR{
		{NotamID: "C0001/26", Series: "C", Location: "RKRR"},
	})
	st.UpsertNotamAD(ctx, []*models.NotamAD{
		{NotamID: "C0002/26", AirportICAO: "RKSI"},
	})
	st.UpsertAirports(ctx, []*models.Airport{
		{ICAOCode: "RKPU", IATACode: "USN", Name: "Ulsan"},
	})
	return st
}

func testRouter(t *testing.T) *chi.Mux {
	t.Helper()
	st := seededStore(t)
	cache := common.NewCacheService(1, 2)
	cr := crawler.New(nil, st, nil, testMetrics, nil, crawler.NewStatusTracker(), 1, time.Minute)

	r := chi.NewRouter()
	r.Get("/api", IndexHandler())
	r.Get("/api/status", StatusHandler(st, cr, cache))
	r.Get("/api/flights", FlightsHandler(st))
	r.Get("/api/flights/departures", DeparturesHandler(st))
	r.Get("/api/flights/arrivals", ArrivalsHandler(st))
	r.Get("/api/flights/search", FlightSearchHandler(st))
	r.Get("/api/flights/route", FlightRouteHandler(st))
	r.Get("/api/weather", WeatherHandler(st))
	r.Get("/api/weather/metar/{airport}", MetarHandler(st))
	r.Get("/api/weather/taf/{airport}", TafHandler(st))
	r.Get("/api/notam", NotamHandler(st))
	r.Get("/api/notam/{location}", NotamByLocationHandler(st))
	r.Get("/api/airports", AirportsHandler(st, cache))
	r.Get("/api/airports/{icao}", AirportInfoHandler(st))
	return r
}

func get(t *testing.T, r http.Handler, path string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestIndexServedUnderAPI(t *testing.T) {
	code, env := get(t, testRouter(t), "/api")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
	assert.Contains(t, string(env.Data), "GET /api/flights")
}

func TestStatusEndpoint(t *testing.T) {
	code, env := get(t, testRouter(t), "/api/status")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)

	var data struct {
		Status  string           `json:"status"`
		Records map[string]int64 `json:"records"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "online", data.Status)
	assert.EqualValues(t, 2, data.Records["flight_plans"])
}

func TestFlightsListAndTypeFilter(t *testing.T) {
	r := testRouter(t)

	_, env := get(t, r, "/api/flights")
	var data struct {
		Count   int         `json:"count"`
		Flights []store.Row `json:"flights"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.Count)

	_, env = get(t, r, "/api/flights?type=departure")
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, 1, data.Count)
	assert.Equal(t, "KAL123", data.Flights[0]["callsign"])
}

func TestFlightsInvalidLimitFallsBack(t *testing.T) {
	code, env := get(t, testRouter(t), "/api/flights?limit=abc")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
}

func TestDeparturesByAirport(t *testing.T) {
	_, env := get(t, testRouter(t), "/api/flights/departures?airport=RKSI")
	var data struct {
		Count      int         `json:"count"`
		Departures []store.Row `json:"departures"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Count)
	require.Len(t, data.Departures, 1)
	assert.Equal(t, "KAL123", data.Departures[0]["callsign"])
}

func TestArrivalsKey(t *testing.T) {
	_, env := get(t, testRouter(t), "/api/flights/arrivals")
	var data struct {
		Count    int         `json:"count"`
		Arrivals []store.Row `json:"arrivals"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, 1, data.Count)
	assert.Equal(t, "AAR456", data.Arrivals[0]["callsign"])
}

func TestFlightSearchRequiresParameter(t *testing.T) {
	r := testRouter(t)

	code, env := get(t, r, "/api/flights/search")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "flight parameter required", env.Message)

	code, env = get(t, r, "/api/flights/search?flight=kal")
	assert.Equal(t, http.StatusOK, code)
	var data struct {
		Found bool `json:"found"`
		Count int  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Found)
	assert.Equal(t, 1, data.Count)
}

// getFlat fetches an endpoint that answers without the envelope.
func getFlat(t *testing.T, r http.Handler, path string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestFlightRouteHitIsFlat(t *testing.T) {
	code, body := getFlat(t, testRouter(t), "/api/flights/route?callsign=KAL123")
	assert.Equal(t, http.StatusOK, code)

	// Map viewers read these at the top level; no envelope here.
	assert.NotContains(t, body, "status")
	assert.NotContains(t, body, "data")
	assert.Equal(t, "ubikais", body["source"])
	origin, ok := body["origin"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "RKSI", origin["icao"])
	destination, ok := body["destination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "RJTT", destination["icao"])
}

func TestFlightRouteMissReturnsFlatNulls(t *testing.T) {
	code, body := getFlat(t, testRouter(t), "/api/flights/route?callsign=NOPE999")
	assert.Equal(t, http.StatusOK, code, "a miss is a 200 so viewers can fall back")

	require.Contains(t, body, "source")
	assert.Nil(t, body["source"])
	assert.Nil(t, body["origin"])
	assert.Nil(t, body["destination"])
	assert.NotContains(t, body, "status")
}

func TestFlightRouteFallsBackToRegistration(t *testing.T) {
	code, body := getFlat(t, testRouter(t),
		"/api/flights/route?callsign=NOPE999&reg=HL8080")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ubikais", body["source"], "callsign miss must fall back to reg")
	assert.Equal(t, "KAL123", body["callsign"])
}

func TestFlightRouteNoParams(t *testing.T) {
	code, env := get(t, testRouter(t), "/api/flights/route")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "callsign or reg required", env.Message)
}

func TestWeatherDefaultsToMetar(t *testing.T) {
	_, env := get(t, testRouter(t), "/api/weather")
	var data struct {
		Type  string `json:"type"`
		Count int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "metar", data.Type)
	assert.Equal(t, 1, data.Count)
}

func TestWeatherRejectsUnknownType(t *testing.T) {
	code, _ := get(t, testRouter(t), "/api/weather?type=pirep")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestMetarByAirport(t *testing.T) {
	r := testRouter(t)

	code, env := get(t, r, "/api/weather/metar/RKSI")
	assert.Equal(t, http.StatusOK, code)
	var data store.Row
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "METAR RKSI 300900Z", data["raw_metar"])

	code, env = get(t, r, "/api/weather/metar/RKPC")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", env.Status)
}

func TestNotamListAndLocation(t *testing.T) {
	r := testRouter(t)

	_, env := get(t, r, "/api/notam")
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Count)

	_, env = get(t, r, "/api/notam/RKSI")
	var byLoc struct {
		Location string      `json:"location"`
		Notams   []store.Row `json:"notams"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &byLoc))
	assert.Equal(t, "RKSI", byLoc.Location)
	require.Len(t, byLoc.Notams, 1)
	assert.Equal(t, "C0002/26", byLoc.Notams[0]["notam_id"])
}

func TestAirports(t *testing.T) {
	r := testRouter(t)

	_, env := get(t, r, "/api/airports")
	var data struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Count)

	code, env := get(t, r, "/api/airports/rkpu")
	assert.Equal(t, http.StatusOK, code)
	var airport store.Row
	require.NoError(t, json.Unmarshal(env.Data, &airport))
	assert.Equal(t, "USN", airport["iata_code"])

	code, _ = get(t, r, "/api/airports/ZZZZ")
	assert.Equal(t, http.StatusNotFound, code)
}
