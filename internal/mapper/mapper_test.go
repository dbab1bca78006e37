package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotamFIRAliasEquivalence(t *testing.T) {
	variants := []Record{
		{"notamId": "C1234/26", "location": "RKRR"},
		{"notamNo": "C1234/26", "location": "RKRR"},
		{"id": "C1234/26", "location": "RKRR"},
	}

	for _, rec := range variants {
		row, ok := NotamFIR(rec)
		require.True(t, ok)
		assert.Equal(t, "C1234/26", row.NotamID)
		assert.Equal(t, "RKRR", row.Location)
	}
}

func TestNotamFIRDefaultsFIR(t *testing.T) {
	row, ok := NotamFIR(Record{"notamId": "A0001/26"})
	require.True(t, ok)
	assert.Equal(t, "RKRR", row.FIR)

	row, ok = NotamFIR(Record{"notamId": "A0002/26", "fir": "RJJJ"})
	require.True(t, ok)
	assert.Equal(t, "RJJJ", row.FIR)
}

func TestNotamFIRSkipsWithoutID(t *testing.T) {
	_, ok := NotamFIR(Record{"series": "C", "location": "RKRR"})
	assert.False(t, ok)
}

func TestNotamADUsesCallerAirport(t *testing.T) {
	row, ok := NotamAD(Record{"notamId": "C0009/26", "ad": "RKSS"}, "RKSI")
	require.True(t, ok)
	assert.Equal(t, "RKSI", row.AirportICAO)

	row, ok = NotamAD(Record{"notamId": "C0009/26", "ad": "RKSS"}, "")
	require.True(t, ok)
	assert.Equal(t, "RKSS", row.AirportICAO)
}

func TestFlightPlanDepartureTimeAliases(t *testing.T) {
	variants := []Record{
		{"callsign": "KAL123", "eobt": "0930"},
		{"callsign": "KAL123", "std": "0930"},
		{"callsign": "KAL123", "depTime": "0930"},
	}

	for _, rec := range variants {
		row, ok := FlightPlan(rec, "DEP", "2026-08-30")
		require.True(t, ok)
		assert.Equal(t, "0930", row.DepartureTime)
		assert.Equal(t, "DEP", row.Direction)
		assert.Equal(t, "2026-08-30", row.CrawledDate)
	}
}

func TestFlightPlanSkipsWithoutCallsign(t *testing.T) {
	_, ok := FlightPlan(Record{"eobt": "0930", "dep": "RKSI"}, "DEP", "2026-08-30")
	assert.False(t, ok)
}

func TestMetarRequiresAirportAndTime(t *testing.T) {
	_, ok := Metar(Record{"airport": "RKSI"})
	assert.False(t, ok)

	_, ok = Metar(Record{"obsTime": "202608300900"})
	assert.False(t, ok)

	row, ok := Metar(Record{
		"airport":  "RKSI",
		"obsTime":  "202608300900",
		"rawMetar": "METAR RKSI 300900Z 27008KT 9999 FEW030 28/21 Q1009 NOSIG",
		"temp":     float64(28),
		"qnh":      "1009",
	})
	require.True(t, ok)
	assert.Equal(t, "RKSI", row.AirportICAO)
	require.True(t, row.Temperature.Valid)
	assert.EqualValues(t, 28, row.Temperature.Int64)
	require.True(t, row.PressureHpa.Valid)
	assert.EqualValues(t, 1009, row.PressureHpa.Int64)
	assert.Contains(t, row.RawData, "NOSIG")
}

func TestMetarPortalAliases(t *testing.T) {
	row, ok := Metar(Record{
		"ad":      "RKSI",
		"obsTime": "202608300900",
		"orgMsg":  "METAR RKSI 300900Z 27008KT CAVOK 28/21 Q1009",
	})
	require.True(t, ok)
	assert.Equal(t, "RKSI", row.AirportICAO)
	assert.Equal(t, "202608300900", row.ObservationTime)
	assert.Contains(t, row.RawMetar, "CAVOK")
}

func TestMetarNullsUnconvertibleNumerics(t *testing.T) {
	row, ok := Metar(Record{
		"airport": "RKPU",
		"obsTime": "202608300900",
		"temp":    "CAVOK",
	})
	require.True(t, ok)
	assert.False(t, row.Temperature.Valid)
}

func TestAirportCoordinateParsing(t *testing.T) {
	row, ok := Airport(Record{
		"icao": "RKPU",
		"lat":  "N35-35-37",
		"lon":  "E129-21-07",
	})
	require.True(t, ok)
	assert.Equal(t, "N35-35-37", row.Latitude)
	require.True(t, row.LatitudeDecimal.Valid)
	assert.InDelta(t, 35.593611, row.LatitudeDecimal.Float64, 1e-4)
	require.True(t, row.LongitudeDecimal.Valid)
	assert.InDelta(t, 129.351944, row.LongitudeDecimal.Float64, 1e-4)
}

func TestAirportMalformedCoordinateNullsField(t *testing.T) {
	row, ok := Airport(Record{"icao": "RKPU", "lat": "not-a-coordinate"})
	require.True(t, ok, "record survives, only the field is dropped")
	assert.False(t, row.LatitudeDecimal.Valid)
	assert.Equal(t, "not-a-coordinate", row.Latitude)
}

func TestSigmetAliases(t *testing.T) {
	row, ok := Sigmet(Record{"sigmetId": "RKRR SIGMET 3", "mov": "NE 10KT"})
	require.True(t, ok)
	assert.Equal(t, "NE 10KT", row.Movement)

	_, ok = Sigmet(Record{"phenomenon": "TS"})
	assert.False(t, ok)
}
