package usecase

import (
	"flightlog-service/internal/domain/entity"
	"flightlog-service/pkg/utils"
)

// MatchesFilter reports whether a flight passes every non-empty predicate of filter.
// Student and aircraft are matched by exact, case-sensitive name.
func MatchesFilter(f entity.FlightRecord, filter entity.FlightFilter) bool {
	if filter.Month != "" && utils.EpochToCalendarMonth(f.Date) != filter.Month {
		return false
	}
	if filter.Student != "" && f.Student != filter.Student {
		return false
	}
	if filter.Aircraft != "" && f.Aircraft != filter.Aircraft {
		return false
	}
	return true
}

// FilterFlights returns the flights matching filter in their input order
func FilterFlights(flights []entity.FlightRecord, filter entity.FlightFilter) []entity.FlightRecord {
	result := make([]entity.FlightRecord, 0, len(flights))
	for _, f := range flights {
		if MatchesFilter(f, filter) {
			result = append(result, f)
		}
	}
	return result
}
