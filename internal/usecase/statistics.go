package usecase

import (
	"sort"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/pkg/utils"
)

// RecentFlightsLimit is the number of flights shown on the dashboard
const RecentFlightsLimit = 8

// FlightStatistics holds the day and month buckets of a flight set together
// with the minutes flown per aircraft
type FlightStatistics struct {
	DailyFlightCount   int
	DailyMinutes       int
	MonthlyFlightCount int
	MonthlyMinutes     int
	// AircraftMinutes is keyed by FlightRecord.AircraftKey
	AircraftMinutes map[string]int
	// AircraftNames maps each key to the most recently flown name
	AircraftNames map[string]string
}

// AggregateStatistics buckets flights into the calendar day and month of now,
// read in now's own location, in a single pass
func AggregateStatistics(flights []entity.FlightRecord, now time.Time) FlightStatistics {
	today := now.Format(utils.DAY_LAYOUT)
	month := now.Format(utils.MONTH_LAYOUT)

	stats := FlightStatistics{
		AircraftMinutes: make(map[string]int),
		AircraftNames:   make(map[string]string),
	}
	latest := make(map[string]int64)

	for _, f := range flights {
		if utils.EpochToCalendarDay(f.Date) == today {
			stats.DailyFlightCount++
			stats.DailyMinutes += f.Duration
		}
		if utils.EpochToCalendarMonth(f.Date) == month {
			stats.MonthlyFlightCount++
			stats.MonthlyMinutes += f.Duration
		}

		key := f.AircraftKey()
		stats.AircraftMinutes[key] += f.Duration
		if seen, ok := latest[key]; !ok || f.Date >= seen {
			latest[key] = f.Date
			stats.AircraftNames[key] = f.Aircraft
		}
	}

	return stats
}

// RecentFlights returns up to limit flights, newest first.
// Flights with equal dates keep their input order.
func RecentFlights(flights []entity.FlightRecord, limit int) []entity.FlightRecord {
	sorted := make([]entity.FlightRecord, len(flights))
	copy(sorted, flights)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
