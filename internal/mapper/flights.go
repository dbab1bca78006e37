package mapper

import "ubikais/mirror/internal/models"

// FlightPlan maps one flight plan record. direction tags the plan as a
// departure or arrival; crawledDate is the YYYY-MM-DD date of the crawl
// cycle, part of the natural key so the same plan seen on different days
// stays distinguishable.
func FlightPlan(rec Record, direction, crawledDate string) (*models.FlightPlan, bool) {
	callsign := str(rec, "callsign", "acid", "fltNo")
	if callsign == "" {
		return nil, false
	}

	return &models.FlightPlan{
		Callsign:       callsign,
		FlightNumber:   str(rec, "flightNumber", "fltNo"),
		AircraftType:   str(rec, "aircraftType", "acType"),
		Registration:   str(rec, "registration", "reg"),
		DepartureICAO:  str(rec, "departure", "depAd", "adep"),
		ArrivalICAO:    str(rec, "arrival", "arrAd", "ades"),
		AlternateICAO:  str(rec, "alternate", "altnAd"),
		DepartureTime:  str(rec, "eobt", "std", "depTime"),
		ArrivalTime:    str(rec, "sta", "arrTime"),
		EOBT:           str(rec, "eobt"),
		ATD:            str(rec, "atd"),
		ETA:            str(rec, "eta"),
		ATA:            str(rec, "ata"),
		FlightRules:    str(rec, "flightRules", "fltRules"),
		FlightType:     str(rec, "flightType", "fltType"),
		Route:          str(rec, "route"),
		CruiseAltitude: str(rec, "cruiseAlt", "rfl"),
		CruiseSpeed:    str(rec, "cruiseSpeed", "speed"),
		Endurance:      str(rec, "endurance", "eet"),
		PersonsOnBoard: nullInt(rec, "pob"),
		Remarks:        str(rec, "remarks", "rmk"),
		Status:         str(rec, "status"),
		Direction:      direction,
		CrawledDate:    crawledDate,
		RawData:        rawJSON(rec),
	}, true
}
