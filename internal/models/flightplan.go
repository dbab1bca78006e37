package models

import (
	"database/sql"
	"time"
)

// Flight plan direction tags. Direction is informational and not part of
// the natural key; a plan seen on both boards the same day keeps the most
// recent write.
const (
	DirectionDeparture = "DEP"
	DirectionArrival   = "ARR"
)

// FlightPlan is one filed flight plan as seen on a given crawl date.
type FlightPlan struct {
	ID             int64         `gorm:"column:id;primaryKey;autoIncrement"`
	Callsign       string        `gorm:"column:callsign;uniqueIndex:idx_flight_plans_key;index"`
	FlightNumber   string        `gorm:"column:flight_number"`
	AircraftType   string        `gorm:"column:aircraft_type"`
	Registration   string        `gorm:"column:registration;index"`
	DepartureICAO  string        `gorm:"column:departure_icao;index"`
	ArrivalICAO    string        `gorm:"column:arrival_icao;index"`
	AlternateICAO  string        `gorm:"column:alternate_icao"`
	DepartureTime  string        `gorm:"column:departure_time;uniqueIndex:idx_flight_plans_key"`
	ArrivalTime    string        `gorm:"column:arrival_time"`
	EOBT           string        `gorm:"column:eobt"`
	ATD            string        `gorm:"column:atd"`
	ETA            string        `gorm:"column:eta"`
	ATA            string        `gorm:"column:ata"`
	FlightRules    string        `gorm:"column:flight_rules"`
	FlightType     string        `gorm:"column:flight_type"`
	Route          string        `gorm:"column:route"`
	CruiseAltitude string        `gorm:"column:cruise_altitude"`
	CruiseSpeed    string        `gorm:"column:cruise_speed"`
	Endurance      string        `gorm:"column:endurance"`
	PersonsOnBoard sql.NullInt64 `gorm:"column:persons_on_board"`
	Remarks        string        `gorm:"column:remarks"`
	Status         string        `gorm:"column:status"`
	Direction      string        `gorm:"column:direction"`
	CrawledDate    string        `gorm:"column:crawled_date;uniqueIndex:idx_flight_plans_key;index"`
	RawData        string        `gorm:"column:raw_data"`
	CreatedAt      time.Time     `gorm:"column:created_at"`
	UpdatedAt      time.Time     `gorm:"column:updated_at"`
}

func (FlightPlan) TableName() string { return "flight_plans" }
