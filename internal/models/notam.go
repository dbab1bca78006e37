package models

import "time"

// NotamFIR is a FIR-scope NOTAM. One row per NOTAM id; a re-fetch of the
// same id replaces the prior row because NOTAM status is mutable.
type NotamFIR struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	NotamID     string    `gorm:"column:notam_id;uniqueIndex;not null"`
	Series      string    `gorm:"column:series"`
	Number      string    `gorm:"column:number"`
	Year        string    `gorm:"column:year"`
	Type        string    `gorm:"column:type"`
	FIR         string    `gorm:"column:fir"`
	QCode       string    `gorm:"column:q_code"`
	Traffic     string    `gorm:"column:traffic"`
	Purpose     string    `gorm:"column:purpose"`
	Scope       string    `gorm:"column:scope"`
	LowerLimit  string    `gorm:"column:lower_limit"`
	UpperLimit  string    `gorm:"column:upper_limit"`
	Coordinates string    `gorm:"column:coordinates"`
	Radius      string    `gorm:"column:radius"`
	Location    string    `gorm:"column:location;index"`
	ValidFrom   string    `gorm:"column:valid_from;index"`
	ValidTo     string    `gorm:"column:valid_to"`
	Schedule    string    `gorm:"column:schedule"`
	FullText    string    `gorm:"column:full_text"`
	RawData     string    `gorm:"column:raw_data"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (NotamFIR) TableName() string { return "notam_fir" }

// NotamAD is an aerodrome-scope NOTAM. The same NOTAM id may appear under
// multiple airports, so the key is (notam_id, airport_icao).
type NotamAD struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	NotamID     string    `gorm:"column:notam_id;uniqueIndex:idx_notam_ad_key;not null"`
	AirportICAO string    `gorm:"column:airport_icao;uniqueIndex:idx_notam_ad_key;index"`
	Series      string    `gorm:"column:series"`
	Number      string    `gorm:"column:number"`
	Year        string    `gorm:"column:year"`
	Type        string    `gorm:"column:type"`
	QCode       string    `gorm:"column:q_code"`
	Traffic     string    `gorm:"column:traffic"`
	Purpose     string    `gorm:"column:purpose"`
	Scope       string    `gorm:"column:scope"`
	LowerLimit  string    `gorm:"column:lower_limit"`
	UpperLimit  string    `gorm:"column:upper_limit"`
	Coordinates string    `gorm:"column:coordinates"`
	Radius      string    `gorm:"column:radius"`
	ValidFrom   string    `gorm:"column:valid_from"`
	ValidTo     string    `gorm:"column:valid_to"`
	Schedule    string    `gorm:"column:schedule"`
	FullText    string    `gorm:"column:full_text"`
	RawData     string    `gorm:"column:raw_data"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (NotamAD) TableName() string { return "notam_ad" }

// Snowtam is a runway surface condition report.
type Snowtam struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SnowtamID       string    `gorm:"column:snowtam_id;uniqueIndex;not null"`
	AirportICAO     string    `gorm:"column:airport_icao;index"`
	ObservationTime string    `gorm:"column:observation_time"`
	Runway          string    `gorm:"column:runway"`
	DepositType     string    `gorm:"column:deposit_type"`
	Extent          string    `gorm:"column:extent"`
	Depth           string    `gorm:"column:depth"`
	Friction        string    `gorm:"column:friction"`
	Contamination   string    `gorm:"column:contamination"`
	FullText        string    `gorm:"column:full_text"`
	RawData         string    `gorm:"column:raw_data"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (Snowtam) TableName() string { return "snowtam" }

// ProhibitedArea is a restricted/prohibited/danger airspace NOTAM. Geometry
// stays a raw coordinate string, not a geometric type.
type ProhibitedArea struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	NotamID     string    `gorm:"column:notam_id;uniqueIndex;not null"`
	AreaName    string    `gorm:"column:area_name"`
	AreaType    string    `gorm:"column:area_type"`
	Coordinates string    `gorm:"column:coordinates"`
	LowerLimit  string    `gorm:"column:lower_limit"`
	UpperLimit  string    `gorm:"column:upper_limit"`
	ValidFrom   string    `gorm:"column:valid_from"`
	ValidTo     string    `gorm:"column:valid_to"`
	Remarks     string    `gorm:"column:remarks"`
	FullText    string    `gorm:"column:full_text"`
	RawData     string    `gorm:"column:raw_data"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (ProhibitedArea) TableName() string { return "prohibited_area" }
