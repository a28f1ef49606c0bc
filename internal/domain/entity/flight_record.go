// internal/domain/entity/flight_record.go
package entity

// FlightType distinguishes solo from dual instruction flights
type FlightType string

const (
	FlightTypeSolo FlightType = "solo"
	FlightTypeDual FlightType = "dual"
)

// Label returns the spreadsheet label of the flight type
func (t FlightType) Label() string {
	if t == FlightTypeSolo {
		return "Solo"
	}
	return "Dual"
}

// Valid reports whether t is a known flight type
func (t FlightType) Valid() bool {
	return t == FlightTypeSolo || t == FlightTypeDual
}

// LandingType distinguishes day from night landings
type LandingType string

const (
	LandingTypeDay   LandingType = "day"
	LandingTypeNight LandingType = "night"
)

// Label returns the spreadsheet label of the landing type
func (t LandingType) Label() string {
	if t == LandingTypeDay {
		return "Day"
	}
	return "Night"
}

// Valid reports whether t is a known landing type
func (t LandingType) Valid() bool {
	return t == LandingTypeDay || t == LandingTypeNight
}

// FlightRecord is one logged training flight.
// Names are denormalized labels as they were at logging time; the *ID fields
// reference roster entries and stay stable across renames. Legacy records may
// carry names only.
type FlightRecord struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Date         int64       `json:"date" bson:"date"` // unix nanoseconds
	Student      string      `json:"student" bson:"student"`
	StudentID    string      `json:"studentId,omitempty" bson:"studentId,omitempty"`
	Instructor   string      `json:"instructor" bson:"instructor"`
	InstructorID string      `json:"instructorId,omitempty" bson:"instructorId,omitempty"`
	Aircraft     string      `json:"aircraft" bson:"aircraft"`
	AircraftID   string      `json:"aircraftId,omitempty" bson:"aircraftId,omitempty"`
	Exercise     string      `json:"exercise" bson:"exercise"`
	ExerciseID   string      `json:"exerciseId,omitempty" bson:"exerciseId,omitempty"`
	FlightType   FlightType  `json:"flightType" bson:"flightType"`
	TakeoffTime  string      `json:"takeoffTime" bson:"takeoffTime"`
	LandingTime  string      `json:"landingTime" bson:"landingTime"`
	Duration     int         `json:"duration" bson:"duration"` // minutes
	LandingType  LandingType `json:"landingType" bson:"landingType"`
	LandingCount int         `json:"landingCount" bson:"landingCount"`
}

// AircraftKey returns the identity used to group the record by aircraft
func (f FlightRecord) AircraftKey() string {
	if f.AircraftID != "" {
		return f.AircraftID
	}
	return f.Aircraft
}

// FlightFilter narrows a flight listing. Empty fields match everything.
type FlightFilter struct {
	Month    string `json:"month"` // YYYY-MM
	Student  string `json:"student"`
	Aircraft string `json:"aircraft"`
}

// IsEmpty reports whether the filter matches every record
func (f FlightFilter) IsEmpty() bool {
	return f.Month == "" && f.Student == "" && f.Aircraft == ""
}
