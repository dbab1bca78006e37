package mapper

import "ubikais/mirror/internal/models"

// Metar maps one weather observation. Both airport and observation time form
// the natural key, so either one missing skips the record.
func Metar(rec Record) (*models.Metar, bool) {
	icao := str(rec, "airport", "ad", "apIcao")
	obsTime := str(rec, "obsTime", "time")
	if icao == "" || obsTime == "" {
		return nil, false
	}

	return &models.Metar{
		AirportICAO:     icao,
		ObservationTime: obsTime,
		RawMetar:        str(rec, "rawMetar", "metar", "orgMsg"),
		WindDirection:   nullInt(rec, "windDir"),
		WindSpeed:       nullInt(rec, "windSpeed", "ws"),
		WindGust:        nullInt(rec, "windGust"),
		VisibilityM:     nullInt(rec, "visibility", "vis"),
		Weather:         str(rec, "weather"),
		Clouds:          str(rec, "clouds"),
		Temperature:     nullInt(rec, "temperature", "temp"),
		Dewpoint:        nullInt(rec, "dewpoint", "dp"),
		PressureHpa:     nullInt(rec, "pressure", "qnh"),
		Remarks:         str(rec, "remarks"),
		RawData:         rawJSON(rec),
	}, true
}

// Taf maps one aerodrome forecast.
func Taf(rec Record) (*models.Taf, bool) {
	icao := str(rec, "airport", "ad", "apIcao")
	issueTime := str(rec, "issueTime", "issTime", "time")
	if icao == "" || issueTime == "" {
		return nil, false
	}

	return &models.Taf{
		AirportICAO: icao,
		IssueTime:   issueTime,
		ValidFrom:   str(rec, "validFrom", "fromDt"),
		ValidTo:     str(rec, "validTo", "toDt"),
		RawTaf:      str(rec, "rawTaf", "taf", "orgMsg"),
		RawData:     rawJSON(rec),
	}, true
}

// Sigmet maps one hazard advisory.
func Sigmet(rec Record) (*models.Sigmet, bool) {
	sigmetID := str(rec, "sigmetId", "id")
	if sigmetID == "" {
		return nil, false
	}

	return &models.Sigmet{
		SigmetID:   sigmetID,
		FIR:        str(rec, "fir"),
		Phenomenon: str(rec, "phenomenon", "phenomena"),
		ValidFrom:  str(rec, "validFrom", "fromDt"),
		ValidTo:    str(rec, "validTo", "toDt"),
		Area:       str(rec, "area"),
		Level:      str(rec, "level"),
		Movement:   str(rec, "movement", "mov"),
		Intensity:  str(rec, "intensity", "intst"),
		RawSigmet:  str(rec, "rawSigmet", "sigmet", "orgMsg"),
		RawData:    rawJSON(rec),
	}, true
}
