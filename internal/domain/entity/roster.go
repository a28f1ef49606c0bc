package entity

import (
	"time"
)

// RosterKind names one of the school's rosters
type RosterKind string

const (
	RosterStudents    RosterKind = "students"
	RosterInstructors RosterKind = "instructors"
	RosterAircraft    RosterKind = "aircraft"
	RosterExercises   RosterKind = "exercises"
)

// RosterKinds lists every roster in display order
var RosterKinds = []RosterKind{RosterStudents, RosterInstructors, RosterAircraft, RosterExercises}

// Valid reports whether k is a known roster
func (k RosterKind) Valid() bool {
	for _, kind := range RosterKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// RosterEntry is a named member of a roster
type RosterEntry struct {
	ID        string     `json:"id"`
	Kind      RosterKind `json:"kind"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// HourLogEntry records hours flown by an aircraft outside discrete flight records
type HourLogEntry struct {
	ID         uint   `json:"id"`
	AircraftID string `json:"aircraftId"`
	Date       int64  `json:"date"` // unix nanoseconds
	Hours      int    `json:"hours"`
}

// ManualHourEntry is the manual hour total of one aircraft
type ManualHourEntry struct {
	AircraftID   string `json:"aircraftId"`
	AircraftName string `json:"aircraftName"`
	TotalHours   int    `json:"totalHours"`
}

// Key returns the identity used to group the entry by aircraft
func (m ManualHourEntry) Key() string {
	if m.AircraftID != "" {
		return m.AircraftID
	}
	return m.AircraftName
}
