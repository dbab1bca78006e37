package crawler

import (
	"ubikais/mirror/internal/mapper"
	"ubikais/mirror/internal/models"
)

// The batch mappers below apply a per-record mapper to a fetched record
// list. A record the mapper rejects (no resolvable natural key) is counted
// as skipped and the rest of the batch proceeds.

func mapNotamFIR(recs []mapper.Record) ([]*models.NotamFIR, int) {
	rows := make([]*models.NotamFIR, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.NotamFIR(rec); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapNotamAD(recs []mapper.Record, airportICAO string) ([]*models.NotamAD, int) {
	rows := make([]*models.NotamAD, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.NotamAD(rec, airportICAO); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapSnowtam(recs []mapper.Record) ([]*models.Snowtam, int) {
	rows := make([]*models.Snowtam, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.Snowtam(rec); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapProhibited(recs []mapper.Record) ([]*models.ProhibitedArea, int) {
	rows := make([]*models.ProhibitedArea, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.ProhibitedArea(rec); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapFlightPlans(recs []mapper.Record, direction, crawledDate string) ([]*models.FlightPlan, int) {
	rows := make([]*models.FlightPlan, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.FlightPlan(rec, direction, crawledDate); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapMetars(recs []mapper.Record) ([]*models.Metar, int) {
	rows := make([]*models.Metar, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.Metar(rec); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapTafs(recs []mapper.Record) ([]*models.Taf, int) {
	rows := make([]*models.Taf, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.Taf(rec); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapSigmets(recs []mapper.Record) ([]*models.Sigmet, int) {
	rows := make([]*models.Sigmet, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.Sigmet(rec); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapAirports(recs []mapper.Record) ([]*models.Airport, int) {
	rows := make([]*models.Airport, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.Airport(rec); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapRunways(recs []mapper.Record, airportICAO string) ([]*models.Runway, int) {
	rows := make([]*models.Runway, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.Runway(rec, airportICAO); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapAprons(recs []mapper.Record, airportICAO string) ([]*models.Apron, int) {
	rows := make([]*models.Apron, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.Apron(rec, airportICAO); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapNavaids(recs []mapper.Record) ([]*models.Navaid, int) {
	rows := make([]*models.Navaid, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.Navaid(rec); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}

func mapObstacles(recs []mapper.Record) ([]*models.Obstacle, int) {
	rows := make([]*models.Obstacle, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		if row, ok := mapper.Obstacle(rec); ok {
			rows = append(rows, row)
		} else {
			skipped++
		}
	}
	return rows, skipped
}
