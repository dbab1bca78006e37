package store

import (
	"context"
	"strings"

	"ubikais/mirror/internal/models"
)

// Row is one result record keyed by column name, the shape the API façade
// serializes directly.
type Row map[string]interface{}

// Default response caps per entity type.
const (
	DefaultFlightLimit  = 100
	DefaultWeatherLimit = 50
	DefaultNotamLimit   = 100
	SearchLimit         = 10
)

func clampLimit(limit, def int) int {
	if limit <= 0 || limit > 1000 {
		return def
	}
	return limit
}

// selectRows runs a read query and normalizes driver byte slices to strings.
func (s *Store) selectRows(ctx context.Context, query string, args ...interface{}) ([]Row, error) {
	rows, err := s.sdb.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		row := Row{}
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) selectOne(ctx context.Context, query string, args ...interface{}) (Row, error) {
	rows, err := s.selectRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// FlightPlans lists stored flight plans, optionally filtered by direction.
func (s *Store) FlightPlans(ctx context.Context, direction string, limit int) ([]Row, error) {
	q := "SELECT * FROM flight_plans WHERE 1=1"
	args := []interface{}{}
	if direction != "" {
		q += " AND direction = ?"
		args = append(args, direction)
	}
	q += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, clampLimit(limit, DefaultFlightLimit))
	return s.selectRows(ctx, q, args...)
}

// Departures lists departure plans, optionally narrowed to one origin.
func (s *Store) Departures(ctx context.Context, airport string, limit int) ([]Row, error) {
	q := "SELECT * FROM flight_plans WHERE direction = ?"
	args := []interface{}{models.DirectionDeparture}
	if airport != "" {
		q += " AND departure_icao LIKE ?"
		args = append(args, "%"+strings.ToUpper(airport)+"%")
	}
	q += " ORDER BY departure_time DESC LIMIT ?"
	args = append(args, clampLimit(limit, DefaultFlightLimit))
	return s.selectRows(ctx, q, args...)
}

// Arrivals lists arrival plans, optionally narrowed to one destination.
func (s *Store) Arrivals(ctx context.Context, airport string, limit int) ([]Row, error) {
	q := "SELECT * FROM flight_plans WHERE direction = ?"
	args := []interface{}{models.DirectionArrival}
	if airport != "" {
		q += " AND arrival_icao LIKE ?"
		args = append(args, "%"+strings.ToUpper(airport)+"%")
	}
	q += " ORDER BY arrival_time DESC LIMIT ?"
	args = append(args, clampLimit(limit, DefaultFlightLimit))
	return s.selectRows(ctx, q, args...)
}

// SearchFlights finds plans whose callsign or flight number contains the
// given fragment, case-insensitively.
func (s *Store) SearchFlights(ctx context.Context, flight string) ([]Row, error) {
	pattern := "%" + strings.ToUpper(flight) + "%"
	return s.selectRows(ctx,
		`SELECT * FROM flight_plans
		 WHERE UPPER(callsign) LIKE ? OR UPPER(flight_number) LIKE ?
		 ORDER BY created_at DESC LIMIT ?`,
		pattern, pattern, SearchLimit)
}

// LatestFlightByCallsign returns the most recent plan matching the callsign,
// or nil when nothing matches.
func (s *Store) LatestFlightByCallsign(ctx context.Context, callsign string) (Row, error) {
	return s.selectOne(ctx,
		`SELECT * FROM flight_plans
		 WHERE UPPER(callsign) LIKE ? OR UPPER(flight_number) LIKE ?
		 ORDER BY created_at DESC LIMIT 1`,
		"%"+strings.ToUpper(callsign)+"%", "%"+strings.ToUpper(callsign)+"%")
}

// LatestFlightByRegistration returns the most recent plan for a tail number.
func (s *Store) LatestFlightByRegistration(ctx context.Context, reg string) (Row, error) {
	return s.selectOne(ctx,
		`SELECT * FROM flight_plans
		 WHERE UPPER(registration) = ?
		 ORDER BY created_at DESC LIMIT 1`,
		strings.ToUpper(reg))
}

// Metars lists observations, optionally narrowed to one airport.
func (s *Store) Metars(ctx context.Context, airport string, limit int) ([]Row, error) {
	q := "SELECT * FROM metar WHERE 1=1"
	args := []interface{}{}
	if airport != "" {
		q += " AND airport_icao LIKE ?"
		args = append(args, "%"+strings.ToUpper(airport)+"%")
	}
	q += " ORDER BY observation_time DESC LIMIT ?"
	args = append(args, clampLimit(limit, DefaultWeatherLimit))
	return s.selectRows(ctx, q, args...)
}

// LatestMetar returns the newest observation for an airport, or nil.
func (s *Store) LatestMetar(ctx context.Context, airport string) (Row, error) {
	return s.selectOne(ctx,
		`SELECT * FROM metar WHERE airport_icao LIKE ?
		 ORDER BY observation_time DESC LIMIT 1`,
		"%"+strings.ToUpper(airport)+"%")
}

// Tafs lists forecasts, optionally narrowed to one airport.
func (s *Store) Tafs(ctx context.Context, airport string, limit int) ([]Row, error) {
	q := "SELECT * FROM taf WHERE 1=1"
	args := []interface{}{}
	if airport != "" {
		q += " AND airport_icao LIKE ?"
		args = append(args, "%"+strings.ToUpper(airport)+"%")
	}
	q += " ORDER BY issue_time DESC LIMIT ?"
	args = append(args, clampLimit(limit, DefaultWeatherLimit))
	return s.selectRows(ctx, q, args...)
}

// LatestTaf returns the newest forecast for an airport, or nil.
func (s *Store) LatestTaf(ctx context.Context, airport string) (Row, error) {
	return s.selectOne(ctx,
		`SELECT * FROM taf WHERE airport_icao LIKE ?
		 ORDER BY issue_time DESC LIMIT 1`,
		"%"+strings.ToUpper(airport)+"%")
}

// Sigmets lists hazard advisories, newest first.
func (s *Store) Sigmets(ctx context.Context, limit int) ([]Row, error) {
	return s.selectRows(ctx,
		"SELECT * FROM sigmet ORDER BY created_at DESC LIMIT ?",
		clampLimit(limit, DefaultWeatherLimit))
}

// NotamsFIR lists FIR-scope NOTAMs filtered by series and location fragment.
func (s *Store) NotamsFIR(ctx context.Context, series, location string, limit int) ([]Row, error) {
	q := "SELECT * FROM notam_fir WHERE 1=1"
	args := []interface{}{}
	if series != "" {
		q += " AND series = ?"
		args = append(args, strings.ToUpper(series))
	}
	if location != "" {
		q += " AND location LIKE ?"
		args = append(args, "%"+strings.ToUpper(location)+"%")
	}
	q += " ORDER BY valid_from DESC LIMIT ?"
	args = append(args, clampLimit(limit, DefaultNotamLimit))
	return s.selectRows(ctx, q, args...)
}

// NotamsByAirport lists aerodrome-scope NOTAMs for one airport.
func (s *Store) NotamsByAirport(ctx context.Context, airport string, limit int) ([]Row, error) {
	return s.selectRows(ctx,
		`SELECT * FROM notam_ad WHERE airport_icao LIKE ?
		 ORDER BY valid_from DESC LIMIT ?`,
		"%"+strings.ToUpper(airport)+"%", clampLimit(limit, DefaultNotamLimit))
}

// Airports lists all stored aerodromes ordered by ICAO code.
func (s *Store) Airports(ctx context.Context) ([]Row, error) {
	return s.selectRows(ctx, "SELECT * FROM airports ORDER BY icao_code ASC")
}

// AirportByICAO returns one aerodrome, or nil when not stored.
func (s *Store) AirportByICAO(ctx context.Context, icao string) (Row, error) {
	return s.selectOne(ctx,
		"SELECT * FROM airports WHERE UPPER(icao_code) = ? LIMIT 1",
		strings.ToUpper(icao))
}
