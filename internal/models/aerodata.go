package models

import (
	"database/sql"
	"time"
)

// Airport is static-ish aerodrome reference data. Raw coordinate strings are
// authoritative; the decimal columns are derived projections and may be null.
type Airport struct {
	ID                    int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ICAOCode              string          `gorm:"column:icao_code;uniqueIndex;not null"`
	IATACode              string          `gorm:"column:iata_code"`
	Name                  string          `gorm:"column:name"`
	NameKorean            string          `gorm:"column:name_korean"`
	City                  string          `gorm:"column:city"`
	UsageType             string          `gorm:"column:usage_type"`
	MagneticVariation     string          `gorm:"column:magnetic_variation"`
	MagneticVariationYear string          `gorm:"column:magnetic_variation_year"`
	ElevationM            sql.NullFloat64 `gorm:"column:elevation_m"`
	ElevationFt           sql.NullFloat64 `gorm:"column:elevation_ft"`
	GeoidUndulation       sql.NullFloat64 `gorm:"column:geoid_undulation"`
	Latitude              string          `gorm:"column:latitude"`
	Longitude             string          `gorm:"column:longitude"`
	LatitudeDecimal       sql.NullFloat64 `gorm:"column:latitude_decimal"`
	LongitudeDecimal      sql.NullFloat64 `gorm:"column:longitude_decimal"`
	TowerElevationM       sql.NullFloat64 `gorm:"column:tower_elevation_m"`
	VerificationDate      string          `gorm:"column:verification_date"`
	RawData               string          `gorm:"column:raw_data"`
	CreatedAt             time.Time       `gorm:"column:created_at"`
	UpdatedAt             time.Time       `gorm:"column:updated_at"`
}

func (Airport) TableName() string { return "airports" }

// Runway holds physical and declared-distance attributes for one runway end.
type Runway struct {
	ID                   int64           `gorm:"column:id;primaryKey;autoIncrement"`
	AirportICAO          string          `gorm:"column:airport_icao;uniqueIndex:idx_runways_key;index"`
	RunwayID             string          `gorm:"column:runway_id;uniqueIndex:idx_runways_key"`
	Direction            string          `gorm:"column:direction;uniqueIndex:idx_runways_key"`
	LengthM              sql.NullFloat64 `gorm:"column:length_m"`
	WidthM               sql.NullFloat64 `gorm:"column:width_m"`
	Surface              string          `gorm:"column:surface"`
	Strength             string          `gorm:"column:strength"`
	ThresholdLatitude    string          `gorm:"column:threshold_latitude"`
	ThresholdLongitude   string          `gorm:"column:threshold_longitude"`
	ThresholdElevationM  sql.NullFloat64 `gorm:"column:threshold_elevation_m"`
	DisplacedThresholdM  sql.NullFloat64 `gorm:"column:displaced_threshold_m"`
	StopwayM             sql.NullFloat64 `gorm:"column:stopway_m"`
	ClearwayM            sql.NullFloat64 `gorm:"column:clearway_m"`
	ToraM                sql.NullFloat64 `gorm:"column:tora_m"`
	TodaM                sql.NullFloat64 `gorm:"column:toda_m"`
	AsdaM                sql.NullFloat64 `gorm:"column:asda_m"`
	LdaM                 sql.NullFloat64 `gorm:"column:lda_m"`
	SlopePercent         sql.NullFloat64 `gorm:"column:slope_percent"`
	Lighting             string          `gorm:"column:lighting"`
	RawData              string          `gorm:"column:raw_data"`
	CreatedAt            time.Time       `gorm:"column:created_at"`
	UpdatedAt            time.Time       `gorm:"column:updated_at"`
}

func (Runway) TableName() string { return "runways" }

// Apron describes one parking apron at an airport.
type Apron struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	AirportICAO     string          `gorm:"column:airport_icao;uniqueIndex:idx_aprons_key;index"`
	ApronName       string          `gorm:"column:apron_name;uniqueIndex:idx_aprons_key"`
	ApronType       string          `gorm:"column:apron_type"`
	Surface         string          `gorm:"column:surface"`
	Strength        string          `gorm:"column:strength"`
	AreaSqm         sql.NullFloat64 `gorm:"column:area_sqm"`
	MaxAircraftSize string          `gorm:"column:max_aircraft_size"`
	StandsCount     sql.NullInt64   `gorm:"column:stands_count"`
	Latitude        string          `gorm:"column:latitude"`
	Longitude       string          `gorm:"column:longitude"`
	RawData         string          `gorm:"column:raw_data"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (Apron) TableName() string { return "aprons" }

// Navaid is a radio navigation aid.
type Navaid struct {
	ID                int64           `gorm:"column:id;primaryKey;autoIncrement"`
	NavaidID          string          `gorm:"column:navaid_id;uniqueIndex;not null"`
	NavaidType        string          `gorm:"column:navaid_type"`
	Name              string          `gorm:"column:name"`
	Frequency         string          `gorm:"column:frequency"`
	Channel           string          `gorm:"column:channel"`
	Latitude          string          `gorm:"column:latitude"`
	Longitude         string          `gorm:"column:longitude"`
	LatitudeDecimal   sql.NullFloat64 `gorm:"column:latitude_decimal"`
	LongitudeDecimal  sql.NullFloat64 `gorm:"column:longitude_decimal"`
	ElevationM        sql.NullFloat64 `gorm:"column:elevation_m"`
	MagneticVariation string          `gorm:"column:magnetic_variation"`
	RangeNm           sql.NullFloat64 `gorm:"column:range_nm"`
	AirportICAO       string          `gorm:"column:airport_icao;index"`
	Remarks           string          `gorm:"column:remarks"`
	RawData           string          `gorm:"column:raw_data"`
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
}

func (Navaid) TableName() string { return "navaids" }

// Obstacle is a charted obstruction with position and lighting data.
type Obstacle struct {
	ID               int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ObstacleID       string          `gorm:"column:obstacle_id;uniqueIndex;not null"`
	ObstacleType     string          `gorm:"column:obstacle_type"`
	Name             string          `gorm:"column:name"`
	Latitude         string          `gorm:"column:latitude"`
	Longitude        string          `gorm:"column:longitude"`
	LatitudeDecimal  sql.NullFloat64 `gorm:"column:latitude_decimal"`
	LongitudeDecimal sql.NullFloat64 `gorm:"column:longitude_decimal"`
	ElevationM       sql.NullFloat64 `gorm:"column:elevation_m"`
	HeightM          sql.NullFloat64 `gorm:"column:height_m"`
	Lighting         string          `gorm:"column:lighting"`
	Marking          string          `gorm:"column:marking"`
	AirportICAO      string          `gorm:"column:airport_icao"`
	AreaAffected     string          `gorm:"column:area_affected"`
	Remarks          string          `gorm:"column:remarks"`
	RawData          string          `gorm:"column:raw_data"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
}

func (Obstacle) TableName() string { return "obstacles" }
