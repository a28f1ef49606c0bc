package usecase

import (
	"sort"

	"flightlog-service/internal/domain/entity"
)

// MergeUtilization combines the per-aircraft flight minutes of stats with the
// manual hour totals into one table, ranked by total minutes descending.
// Flights logged by name only join the roster aircraft of that name.
// Equal totals are ordered by aircraft name, then by key.
func MergeUtilization(stats FlightStatistics, manual []entity.ManualHourEntry) []entity.UtilizationRow {
	totals := make(map[string]int, len(stats.AircraftMinutes)+len(manual))
	names := make(map[string]string, len(totals))

	rosterKeys := make(map[string]string, len(manual))
	for _, m := range manual {
		if m.AircraftID == "" || m.AircraftName == "" {
			continue
		}
		if _, ok := rosterKeys[m.AircraftName]; !ok {
			rosterKeys[m.AircraftName] = m.AircraftID
		}
	}

	for key, minutes := range stats.AircraftMinutes {
		name := stats.AircraftNames[key]
		// a name-only key equals its own name
		if rosterKey, ok := rosterKeys[key]; ok && key == name {
			key = rosterKey
		}
		totals[key] += minutes
		if names[key] == "" {
			names[key] = name
		}
	}

	// Roster names win over the names recorded on flights
	for _, m := range manual {
		key := m.Key()
		totals[key] += m.TotalHours * 60
		if m.AircraftName != "" {
			names[key] = m.AircraftName
		}
	}

	rows := make([]entity.UtilizationRow, 0, len(totals))
	for key, minutes := range totals {
		name := names[key]
		if name == "" {
			name = key
		}
		row := entity.UtilizationRow{
			AircraftName: name,
			TotalMinutes: minutes,
		}
		if key != name {
			row.AircraftID = key
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalMinutes != rows[j].TotalMinutes {
			return rows[i].TotalMinutes > rows[j].TotalMinutes
		}
		if rows[i].AircraftName != rows[j].AircraftName {
			return rows[i].AircraftName < rows[j].AircraftName
		}
		return rows[i].AircraftID < rows[j].AircraftID
	})

	return rows
}

// MaxUtilization returns the largest total of a ranked table, used to scale
// bar charts. It reports false for an empty table.
func MaxUtilization(rows []entity.UtilizationRow) (int, bool) {
	if len(rows) == 0 {
		return 0, false
	}
	return rows[0].TotalMinutes, true
}
