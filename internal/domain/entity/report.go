package entity

// UtilizationRow is the total minutes flown by one aircraft
type UtilizationRow struct {
	AircraftID   string `json:"aircraftId,omitempty"`
	AircraftName string `json:"aircraftName"`
	TotalMinutes int    `json:"totalMinutes"`
}

// DashboardSnapshot is the derived reporting view over all flights.
// It is recomputed on every request and never stored.
type DashboardSnapshot struct {
	DailyFlightCount      int              `json:"dailyFlightCount"`
	DailyMinutes          int              `json:"dailyMinutes"`
	MonthlyFlightCount    int              `json:"monthlyFlightCount"`
	MonthlyMinutes        int              `json:"monthlyMinutes"`
	RecentFlights         []FlightRecord   `json:"recentFlights"`
	Utilization           []UtilizationRow `json:"utilization"`
	MaxUtilizationMinutes int              `json:"maxUtilizationMinutes"`
}
