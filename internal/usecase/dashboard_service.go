package usecase

import (
	"context"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/metrics"
)

// DashboardService builds dashboard snapshots from the flight and aircraft stores
type DashboardService struct {
	flightRepo   repository.FlightRecordRepository
	aircraftRepo repository.AircraftRepository
	location     *time.Location
	metrics      *metrics.Metrics
	logger       logger.Logger
	now          func() time.Time
}

// NewDashboardService creates a new dashboard service.
// The current day and month are read on the wall clock of location; nil means UTC.
func NewDashboardService(
	flightRepo repository.FlightRecordRepository,
	aircraftRepo repository.AircraftRepository,
	location *time.Location,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardService{
		flightRepo:   flightRepo,
		aircraftRepo: aircraftRepo,
		location:     location,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to pick the current day and month
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// GetDashboard fetches all flights and manual hours and derives a fresh snapshot
func (s *DashboardService) GetDashboard(ctx context.Context) (*entity.DashboardSnapshot, error) {
	start := time.Now()

	flights, err := s.flightRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list flights for dashboard", "error", err)
		s.metrics.IncError("dashboard_flights")
		return nil, unavailable("list flights", err)
	}

	manual, err := s.aircraftRepo.ListManualHours(ctx)
	if err != nil {
		s.logger.Error("Failed to list manual aircraft hours for dashboard", "error", err)
		s.metrics.IncError("dashboard_manual_hours")
		return nil, unavailable("list manual hours", err)
	}

	snapshot := BuildSnapshot(flights, manual, s.now().In(s.location))

	s.metrics.ObserveDashboardBuild(time.Since(start))
	s.logger.Debug("Dashboard built",
		"flights", len(flights),
		"manualEntries", len(manual),
		"utilizationRows", len(snapshot.Utilization),
		"duration", time.Since(start))

	return snapshot, nil
}

// BuildSnapshot derives a dashboard snapshot from already fetched collections
func BuildSnapshot(flights []entity.FlightRecord, manual []entity.ManualHourEntry, now time.Time) *entity.DashboardSnapshot {
	stats := AggregateStatistics(flights, now)
	rows := MergeUtilization(stats, manual)
	maxMinutes, _ := MaxUtilization(rows)

	return &entity.DashboardSnapshot{
		DailyFlightCount:      stats.DailyFlightCount,
		DailyMinutes:          stats.DailyMinutes,
		MonthlyFlightCount:    stats.MonthlyFlightCount,
		MonthlyMinutes:        stats.MonthlyMinutes,
		RecentFlights:         RecentFlights(flights, RecentFlightsLimit),
		Utilization:           rows,
		MaxUtilizationMinutes: maxMinutes,
	}
}
