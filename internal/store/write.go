package store

import (
	"context"

	"gorm.io/gorm/clause"

	"ubikais/mirror/internal/logging"
	"ubikais/mirror/internal/models"
)

// upsertEach writes rows one at a time with insert-or-replace semantics on
// the given natural-key columns. One malformed row must never block the
// rest of the batch, so row failures are logged and skipped; the return
// value is the number of rows actually written.
func upsertEach[T any](ctx context.Context, s *Store, table string, keyCols []string, rows []*T) int {
	if len(rows) == 0 {
		return 0
	}

	conflict := clause.OnConflict{
		Columns:   make([]clause.Column, len(keyCols)),
		UpdateAll: true,
	}
	for i, col := range keyCols {
		conflict.Columns[i] = clause.Column{Name: col}
	}

	written := 0
	for _, row := range rows {
		if err := s.gdb.WithContext(ctx).Clauses(conflict).Create(row).Error; err != nil {
			logging.Warn("upsert failed", "table", table, "error", err.Error())
			continue
		}
		written++
	}
	return written
}

func (s *Store) UpsertNotamFIR(ctx context.Context, rows []*models.NotamFIR) int {
	return upsertEach(ctx, s, "notam_fir", []string{"notam_id"}, rows)
}

func (s *Store) UpsertNotamAD(ctx context.Context, rows []*models.NotamAD) int {
	return upsertEach(ctx, s, "notam_ad", []string{"notam_id", "airport_icao"}, rows)
}

func (s *Store) UpsertSnowtam(ctx context.Context, rows []*models.Snowtam) int {
	return upsertEach(ctx, s, "snowtam", []string{"snowtam_id"}, rows)
}

func (s *Store) UpsertProhibitedArea(ctx context.Context, rows []*models.ProhibitedArea) int {
	return upsertEach(ctx, s, "prohibited_area", []string{"notam_id"}, rows)
}

func (s *Store) UpsertAirports(ctx context.Context, rows []*models.Airport) int {
	return upsertEach(ctx, s, "airports", []string{"icao_code"}, rows)
}

func (s *Store) UpsertRunways(ctx context.Context, rows []*models.Runway) int {
	return upsertEach(ctx, s, "runways", []string{"airport_icao", "runway_id", "direction"}, rows)
}

func (s *Store) UpsertAprons(ctx context.Context, rows []*models.Apron) int {
	return upsertEach(ctx, s, "aprons", []string{"airport_icao", "apron_name"}, rows)
}

func (s *Store) UpsertNavaids(ctx context.Context, rows []*models.Navaid) int {
	return upsertEach(ctx, s, "navaids", []string{"navaid_id"}, rows)
}

func (s *Store) UpsertObstacles(ctx context.Context, rows []*models.Obstacle) int {
	return upsertEach(ctx, s, "obstacles", []string{"obstacle_id"}, rows)
}

func (s *Store) UpsertFlightPlans(ctx context.Context, rows []*models.FlightPlan) int {
	return upsertEach(ctx, s, "flight_plans", []string{"callsign", "departure_time", "crawled_date"}, rows)
}

func (s *Store) UpsertMetars(ctx context.Context, rows []*models.Metar) int {
	return upsertEach(ctx, s, "metar", []string{"airport_icao", "observation_time"}, rows)
}

func (s *Store) UpsertTafs(ctx context.Context, rows []*models.Taf) int {
	return upsertEach(ctx, s, "taf", []string{"airport_icao", "issue_time"}, rows)
}

func (s *Store) UpsertSigmets(ctx context.Context, rows []*models.Sigmet) int {
	return upsertEach(ctx, s, "sigmet", []string{"sigmet_id"}, rows)
}
