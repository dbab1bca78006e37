// Package store owns the SQLite schema and all access to it. Writes go
// through gorm with natural-key conflict clauses; the read side uses sqlx
// with hand-written SQL. A single writer is assumed; the crawl cycle
// serializes all write batches.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ubikais/mirror/internal/models"
)

// tables lists every table for Stats, in schema order.
var tables = []string{
	"notam_fir", "notam_ad", "snowtam", "prohibited_area",
	"airports", "runways", "aprons", "navaids", "obstacles",
	"flight_plans", "metar", "taf", "sigmet",
}

// Store wraps the shared database handle. Open it once at process start and
// inject it where needed; Close releases it at shutdown.
type Store struct {
	gdb *gorm.DB
	sdb *sqlx.DB
}

// Open creates the database file if needed, runs migrations, and returns a
// ready store.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite (gorm): %w", err)
	}

	if err := gdb.AutoMigrate(
		&models.NotamFIR{}, &models.NotamAD{}, &models.Snowtam{}, &models.ProhibitedArea{},
		&models.Airport{}, &models.Runway{}, &models.Apron{}, &models.Navaid{}, &models.Obstacle{},
		&models.FlightPlan{}, &models.Metar{}, &models.Taf{}, &models.Sigmet{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	sdb, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite (sqlx): %w", err)
	}

	return &Store{gdb: gdb, sdb: sdb}, nil
}

// Close releases both database handles.
func (s *Store) Close() error {
	if db, err := s.gdb.DB(); err == nil {
		_ = db.Close()
	}
	return s.sdb.Close()
}

// Ping verifies the database is reachable for health reporting.
func (s *Store) Ping(ctx context.Context) error {
	return s.sdb.PingContext(ctx)
}

// Stats reports the row count of every table. A table that does not exist
// yet counts as zero rather than failing the call.
func (s *Store) Stats(ctx context.Context) map[string]int64 {
	stats := make(map[string]int64, len(tables))
	for _, table := range tables {
		var count int64
		if err := s.sdb.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table); err != nil {
			stats[table] = 0
			continue
		}
		stats[table] = count
	}
	return stats
}
