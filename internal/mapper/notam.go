package mapper

import "ubikais/mirror/internal/models"

// NotamFIR maps one FIR-scope NOTAM record. The second return value is
// false when the record has no resolvable NOTAM id.
func NotamFIR(rec Record) (*models.NotamFIR, bool) {
	notamID := str(rec, "notamId", "notamNo", "id")
	if notamID == "" {
		return nil, false
	}

	fir := str(rec, "fir")
	if fir == "" {
		fir = "RKRR"
	}

	return &models.NotamFIR{
		NotamID:     notamID,
		Series:      str(rec, "series"),
		Number:      str(rec, "number"),
		Year:        str(rec, "year"),
		Type:        str(rec, "type", "notamType"),
		FIR:         fir,
		QCode:       str(rec, "qCode"),
		Traffic:     str(rec, "traffic"),
		Purpose:     str(rec, "purpose"),
		Scope:       str(rec, "scope"),
		LowerLimit:  str(rec, "lowerLimit", "flLower"),
		UpperLimit:  str(rec, "upperLimit", "flUpper"),
		Coordinates: str(rec, "coordinates", "coord"),
		Radius:      str(rec, "radius"),
		Location:    str(rec, "location", "ad"),
		ValidFrom:   str(rec, "validFrom", "fromDt"),
		ValidTo:     str(rec, "validTo", "toDt"),
		Schedule:    str(rec, "schedule"),
		FullText:    str(rec, "fullText", "notamText", "eText"),
		RawData:     rawJSON(rec),
	}, true
}

// NotamAD maps one aerodrome-scope NOTAM record. airportICAO overrides the
// record's own airport field when the caller already knows which aerodrome
// the batch was fetched for.
func NotamAD(rec Record, airportICAO string) (*models.NotamAD, bool) {
	notamID := str(rec, "notamId", "notamNo", "id")
	if notamID == "" {
		return nil, false
	}

	icao := airportICAO
	if icao == "" {
		icao = str(rec, "ad", "airport", "apIcao")
	}

	return &models.NotamAD{
		NotamID:     notamID,
		AirportICAO: icao,
		Series:      str(rec, "series"),
		Number:      str(rec, "number"),
		Year:        str(rec, "year"),
		Type:        str(rec, "type", "notamType"),
		QCode:       str(rec, "qCode"),
		Traffic:     str(rec, "traffic"),
		Purpose:     str(rec, "purpose"),
		Scope:       str(rec, "scope"),
		LowerLimit:  str(rec, "lowerLimit", "flLower"),
		UpperLimit:  str(rec, "upperLimit", "flUpper"),
		Coordinates: str(rec, "coordinates", "coord"),
		Radius:      str(rec, "radius"),
		ValidFrom:   str(rec, "validFrom", "fromDt"),
		ValidTo:     str(rec, "validTo", "toDt"),
		Schedule:    str(rec, "schedule"),
		FullText:    str(rec, "fullText", "notamText", "eText"),
		RawData:     rawJSON(rec),
	}, true
}

// Snowtam maps one runway surface condition report.
func Snowtam(rec Record) (*models.Snowtam, bool) {
	snowtamID := str(rec, "snowtamId", "id")
	if snowtamID == "" {
		return nil, false
	}

	return &models.Snowtam{
		SnowtamID:       snowtamID,
		AirportICAO:     str(rec, "ad", "airport", "apIcao"),
		ObservationTime: str(rec, "obsTime"),
		Runway:          str(rec, "runway"),
		DepositType:     str(rec, "depositType"),
		Extent:          str(rec, "extent"),
		Depth:           str(rec, "depth"),
		Friction:        str(rec, "friction"),
		Contamination:   str(rec, "contamination"),
		FullText:        str(rec, "fullText", "snowtamText"),
		RawData:         rawJSON(rec),
	}, true
}

// ProhibitedArea maps one restricted/prohibited airspace record.
func ProhibitedArea(rec Record) (*models.ProhibitedArea, bool) {
	notamID := str(rec, "notamId", "notamNo", "id")
	if notamID == "" {
		return nil, false
	}

	return &models.ProhibitedArea{
		NotamID:     notamID,
		AreaName:    str(rec, "areaName", "name"),
		AreaType:    str(rec, "areaType", "qCode"),
		Coordinates: str(rec, "coordinates", "coord"),
		LowerLimit:  str(rec, "lowerLimit", "flLower"),
		UpperLimit:  str(rec, "upperLimit", "flUpper"),
		ValidFrom:   str(rec, "validFrom", "fromDt"),
		ValidTo:     str(rec, "validTo", "toDt"),
		Remarks:     str(rec, "remarks", "rmk"),
		FullText:    str(rec, "fullText", "eText"),
		RawData:     rawJSON(rec),
	}, true
}
