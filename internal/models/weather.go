package models

import (
	"database/sql"
	"time"
)

// Metar is one routine weather observation. Immutable once issued, so the
// row carries no updated_at; a re-fetch of the same (airport, time) key
// simply replaces identical content.
type Metar struct {
	ID              int64         `gorm:"column:id;primaryKey;autoIncrement"`
	AirportICAO     string        `gorm:"column:airport_icao;uniqueIndex:idx_metar_key;index"`
	ObservationTime string        `gorm:"column:observation_time;uniqueIndex:idx_metar_key"`
	RawMetar        string        `gorm:"column:raw_metar"`
	WindDirection   sql.NullInt64 `gorm:"column:wind_direction"`
	WindSpeed       sql.NullInt64 `gorm:"column:wind_speed"`
	WindGust        sql.NullInt64 `gorm:"column:wind_gust"`
	VisibilityM     sql.NullInt64 `gorm:"column:visibility_m"`
	Weather         string        `gorm:"column:weather"`
	Clouds          string        `gorm:"column:clouds"`
	Temperature     sql.NullInt64 `gorm:"column:temperature"`
	Dewpoint        sql.NullInt64 `gorm:"column:dewpoint"`
	PressureHpa     sql.NullInt64 `gorm:"column:pressure_hpa"`
	Remarks         string        `gorm:"column:remarks"`
	RawData         string        `gorm:"column:raw_data"`
	CreatedAt       time.Time     `gorm:"column:created_at"`
}

func (Metar) TableName() string { return "metar" }

// Taf is one aerodrome forecast, keyed by airport and issue time.
type Taf struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	AirportICAO string    `gorm:"column:airport_icao;uniqueIndex:idx_taf_key;index"`
	IssueTime   string    `gorm:"column:issue_time;uniqueIndex:idx_taf_key"`
	ValidFrom   string    `gorm:"column:valid_from"`
	ValidTo     string    `gorm:"column:valid_to"`
	RawTaf      string    `gorm:"column:raw_taf"`
	RawData     string    `gorm:"column:raw_data"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Taf) TableName() string { return "taf" }

// Sigmet is a significant-weather hazard advisory.
type Sigmet struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SigmetID   string    `gorm:"column:sigmet_id;uniqueIndex;not null"`
	FIR        string    `gorm:"column:fir"`
	Phenomenon string    `gorm:"column:phenomenon"`
	ValidFrom  string    `gorm:"column:valid_from"`
	ValidTo    string    `gorm:"column:valid_to"`
	Area       string    `gorm:"column:area"`
	Level      string    `gorm:"column:level"`
	Movement   string    `gorm:"column:movement"`
	Intensity  string    `gorm:"column:intensity"`
	RawSigmet  string    `gorm:"column:raw_sigmet"`
	RawData    string    `gorm:"column:raw_data"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Sigmet) TableName() string { return "sigmet" }
