package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubikais/mirror/internal/logging"
	"ubikais/mirror/internal/models"
)

func init() {
	_ = logging.Init("test")
}

// openTestStore opens a store on a temp file. Both handles must point at the
// same database, so :memory: is not usable here.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUpsertNotamFIRIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	row := &models.NotamFIR{NotamID: "C1234/26", Series: "C", Location: "RKRR", FullText: "initial"}
	assert.Equal(t, 1, s.UpsertNotamFIR(ctx, []*models.NotamFIR{row}))

	// Same natural key again with changed content replaces, not duplicates.
	updated := &models.NotamFIR{NotamID: "C1234/26", Series: "C", Location: "RKRR", FullText: "revised"}
	assert.Equal(t, 1, s.UpsertNotamFIR(ctx, []*models.NotamFIR{updated}))

	rows, err := s.NotamsFIR(ctx, "C", "", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "revised", rows[0]["full_text"])
}

func TestUpsertFlightPlanCompositeKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := models.FlightPlan{
		Callsign:      "KAL123",
		DepartureICAO: "RKSI",
		ArrivalICAO:   "RJTT",
		DepartureTime: "0930",
		Direction:     models.DirectionDeparture,
		CrawledDate:   "2026-08-30",
	}
	sameKey := base
	sameKey.Route = "EGOBA Y697 LANAT"
	otherDay := base
	otherDay.CrawledDate = "2026-08-31"

	s.UpsertFlightPlans(ctx, []*models.FlightPlan{&base})
	s.UpsertFlightPlans(ctx, []*models.FlightPlan{&sameKey, &otherDay})

	rows, err := s.FlightPlans(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "same key replaces, different crawl date inserts")
}

func TestDeparturesFiltersByDirectionAndAirport(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.UpsertFlightPlans(ctx, []*models.FlightPlan{
		{Callsign: "KAL123", DepartureICAO: "RKSI", DepartureTime: "0900", Direction: models.DirectionDeparture, CrawledDate: "2026-08-30"},
		{Callsign: "AAR456", DepartureICAO: "RKPK", DepartureTime: "0910", Direction: models.DirectionDeparture, CrawledDate: "2026-08-30"},
		{Callsign: "JJA789", ArrivalICAO: "RKSI", ArrivalTime: "1100", Direction: models.DirectionArrival, CrawledDate: "2026-08-30"},
	})

	rows, err := s.Departures(ctx, "RKSI", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "KAL123", rows[0]["callsign"])

	rows, err = s.Arrivals(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "JJA789", rows[0]["callsign"])
}

func TestSearchFlightsCaseInsensitive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.UpsertFlightPlans(ctx, []*models.FlightPlan{
		{Callsign: "KAL123", DepartureTime: "0900", Direction: models.DirectionDeparture, CrawledDate: "2026-08-30"},
	})

	rows, err := s.SearchFlights(ctx, "kal1")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = s.SearchFlights(ctx, "ZZZ")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLatestFlightLookups(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.UpsertFlightPlans(ctx, []*models.FlightPlan{
		{Callsign: "KAL123", Registration: "HL8080", DepartureICAO: "RKSI", ArrivalICAO: "RJTT",
			DepartureTime: "0900", Direction: models.DirectionDeparture, CrawledDate: "2026-08-30"},
	})

	row, err := s.LatestFlightByCallsign(ctx, "KAL123")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "RKSI", row["departure_icao"])

	row, err = s.LatestFlightByRegistration(ctx, "hl8080")
	require.NoError(t, err)
	require.NotNil(t, row)

	row, err = s.LatestFlightByCallsign(ctx, "NOPE999")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestLatestMetarOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.UpsertMetars(ctx, []*models.Metar{
		{AirportICAO: "RKSI", ObservationTime: "202608300800", RawMetar: "old"},
		{AirportICAO: "RKSI", ObservationTime: "202608300900", RawMetar: "new"},
	})

	row, err := s.LatestMetar(ctx, "RKSI")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "new", row["raw_metar"])

	row, err = s.LatestMetar(ctx, "RKPC")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestNotamsByAirport(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.UpsertNotamAD(ctx, []*models.NotamAD{
		{NotamID: "C0001/26", AirportICAO: "RKSI"},
		{NotamID: "C0002/26", AirportICAO: "RKPK"},
	})

	rows, err := s.NotamsByAirport(ctx, "rksi", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "C0001/26", rows[0]["notam_id"])
}

func TestAirportByICAO(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.UpsertAirports(ctx, []*models.Airport{
		{ICAOCode: "RKPU", IATACode: "USN", Name: "Ulsan"},
	})

	row, err := s.AirportByICAO(ctx, "rkpu")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "USN", row["iata_code"])

	row, err = s.AirportByICAO(ctx, "ZZZZ")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestStatsCountsAllTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.UpsertNotamFIR(ctx, []*models.NotamFIR{{NotamID: "C0001/26"}})
	s.UpsertMetars(ctx, []*models.Metar{{AirportICAO: "RKSI", ObservationTime: "202608300900"}})

	stats := s.Stats(ctx)
	assert.EqualValues(t, 1, stats["notam_fir"])
	assert.EqualValues(t, 1, stats["metar"])
	assert.EqualValues(t, 0, stats["sigmet"])
	assert.Len(t, stats, 13)
}
