package mapper

import (
	"database/sql"

	"ubikais/mirror/internal/coords"
	"ubikais/mirror/internal/models"
)

// decimal projects a raw coordinate string to decimal degrees. Unparsable
// input leaves the column null; the raw string stays authoritative.
func decimal(raw string) sql.NullFloat64 {
	if v, ok := coords.Parse(raw); ok {
		return sql.NullFloat64{Float64: v, Valid: true}
	}
	return sql.NullFloat64{}
}

// Airport maps one aerodrome reference record.
func Airport(rec Record) (*models.Airport, bool) {
	icao := str(rec, "icao", "icaoCode", "apIcao")
	if icao == "" {
		return nil, false
	}

	lat := str(rec, "latitude", "lat")
	lon := str(rec, "longitude", "lon")

	return &models.Airport{
		ICAOCode:              icao,
		IATACode:              str(rec, "iata", "iataCode"),
		Name:                  str(rec, "name", "apName"),
		NameKorean:            str(rec, "nameKo", "apNameKor"),
		City:                  str(rec, "city", "cityName"),
		UsageType:             str(rec, "usage", "usageType"),
		MagneticVariation:     str(rec, "magVar", "magneticVariation"),
		MagneticVariationYear: str(rec, "magVarYear"),
		ElevationM:            nullFloat(rec, "elevation", "elevM"),
		ElevationFt:           nullFloat(rec, "elevationFt"),
		GeoidUndulation:       nullFloat(rec, "geoidUndulation"),
		Latitude:              lat,
		Longitude:             lon,
		LatitudeDecimal:       decimal(lat),
		LongitudeDecimal:      decimal(lon),
		TowerElevationM:       nullFloat(rec, "towerElev"),
		VerificationDate:      str(rec, "verificationDate", "verDt"),
		RawData:               rawJSON(rec),
	}, true
}

// Runway maps one runway record fetched for the given airport.
func Runway(rec Record, airportICAO string) (*models.Runway, bool) {
	runwayID := str(rec, "rwyId", "runwayId")
	if airportICAO == "" || runwayID == "" {
		return nil, false
	}

	return &models.Runway{
		AirportICAO:         airportICAO,
		RunwayID:            runwayID,
		Direction:           str(rec, "direction", "rwyDir"),
		LengthM:             nullFloat(rec, "length", "lengthM"),
		WidthM:              nullFloat(rec, "width", "widthM"),
		Surface:             str(rec, "surface", "surfaceType"),
		Strength:            str(rec, "strength", "pcn"),
		ThresholdLatitude:   str(rec, "thrLat"),
		ThresholdLongitude:  str(rec, "thrLon"),
		ThresholdElevationM: nullFloat(rec, "thrElev"),
		DisplacedThresholdM: nullFloat(rec, "displacedThr"),
		StopwayM:            nullFloat(rec, "stopway"),
		ClearwayM:           nullFloat(rec, "clearway"),
		ToraM:               nullFloat(rec, "tora"),
		TodaM:               nullFloat(rec, "toda"),
		AsdaM:               nullFloat(rec, "asda"),
		LdaM:                nullFloat(rec, "lda"),
		SlopePercent:        nullFloat(rec, "slope"),
		Lighting:            str(rec, "lighting"),
		RawData:             rawJSON(rec),
	}, true
}

// Apron maps one apron record fetched for the given airport.
func Apron(rec Record, airportICAO string) (*models.Apron, bool) {
	name := str(rec, "apronName", "name")
	if airportICAO == "" || name == "" {
		return nil, false
	}

	return &models.Apron{
		AirportICAO:     airportICAO,
		ApronName:       name,
		ApronType:       str(rec, "apronType", "type"),
		Surface:         str(rec, "surface", "surfaceType"),
		Strength:        str(rec, "strength", "pcn"),
		AreaSqm:         nullFloat(rec, "areaSqm", "area"),
		MaxAircraftSize: str(rec, "maxAircraftSize", "maxAcft"),
		StandsCount:     nullInt(rec, "standsCount", "stands"),
		Latitude:        str(rec, "latitude", "lat"),
		Longitude:       str(rec, "longitude", "lon"),
		RawData:         rawJSON(rec),
	}, true
}

// Navaid maps one navigation aid record.
func Navaid(rec Record) (*models.Navaid, bool) {
	navaidID := str(rec, "navaidId", "id")
	if navaidID == "" {
		return nil, false
	}

	lat := str(rec, "latitude", "lat")
	lon := str(rec, "longitude", "lon")

	return &models.Navaid{
		NavaidID:          navaidID,
		NavaidType:        str(rec, "type", "navaidType"),
		Name:              str(rec, "name"),
		Frequency:         str(rec, "frequency", "freq"),
		Channel:           str(rec, "channel"),
		Latitude:          lat,
		Longitude:         lon,
		LatitudeDecimal:   decimal(lat),
		LongitudeDecimal:  decimal(lon),
		ElevationM:        nullFloat(rec, "elevation", "elev"),
		MagneticVariation: str(rec, "magVar"),
		RangeNm:           nullFloat(rec, "range"),
		AirportICAO:       str(rec, "airport", "ad"),
		Remarks:           str(rec, "remarks"),
		RawData:           rawJSON(rec),
	}, true
}

// Obstacle maps one obstruction record.
func Obstacle(rec Record) (*models.Obstacle, bool) {
	obstacleID := str(rec, "obstId", "id")
	if obstacleID == "" {
		return nil, false
	}

	lat := str(rec, "latitude", "lat")
	lon := str(rec, "longitude", "lon")

	return &models.Obstacle{
		ObstacleID:       obstacleID,
		ObstacleType:     str(rec, "type", "obstType"),
		Name:             str(rec, "name"),
		Latitude:         lat,
		Longitude:        lon,
		LatitudeDecimal:  decimal(lat),
		LongitudeDecimal: decimal(lon),
		ElevationM:       nullFloat(rec, "elevation", "elev"),
		HeightM:          nullFloat(rec, "height"),
		Lighting:         str(rec, "lighting"),
		Marking:          str(rec, "marking"),
		AirportICAO:      str(rec, "airport", "ad"),
		AreaAffected:     str(rec, "areaAffected"),
		Remarks:          str(rec, "remarks"),
		RawData:          rawJSON(rec),
	}, true
}
