package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/metrics"
	"flightlog-service/pkg/utils"
)

// FlightInput is a flight as entered by a user. Roster references may be given
// by id, by name or both; an id takes precedence.
type FlightInput struct {
	Date         string             `json:"date"` // YYYY-MM-DD
	Student      string             `json:"student"`
	StudentID    string             `json:"studentId"`
	Instructor   string             `json:"instructor"`
	InstructorID string             `json:"instructorId"`
	Aircraft     string             `json:"aircraft"`
	AircraftID   string             `json:"aircraftId"`
	Exercise     string             `json:"exercise"`
	ExerciseID   string             `json:"exerciseId"`
	FlightType   entity.FlightType  `json:"flightType"`
	TakeoffTime  string             `json:"takeoffTime"`
	LandingTime  string             `json:"landingTime"`
	LandingType  entity.LandingType `json:"landingType"`
	LandingCount int                `json:"landingCount"`
}

// FlightLogService logs, lists and exports flight records
type FlightLogService struct {
	flightRepo repository.FlightRecordRepository
	rosterRepo repository.RosterRepository
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewFlightLogService creates a new flight log service
func NewFlightLogService(
	flightRepo repository.FlightRecordRepository,
	rosterRepo repository.RosterRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlightLogService {
	return &FlightLogService{
		flightRepo: flightRepo,
		rosterRepo: rosterRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// LogFlight validates input, links it to the rosters and stores it
func (s *FlightLogService) LogFlight(ctx context.Context, input FlightInput) (*entity.FlightRecord, error) {
	record, reason, err := s.buildRecord(ctx, input)
	if err != nil {
		if reason != "" {
			s.metrics.IncValidationFailure(reason)
			s.logger.Warn("Rejected flight entry", "reason", reason, "error", err)
		}
		return nil, err
	}

	record.ID = uuid.NewString()
	if err := s.flightRepo.Create(ctx, record); err != nil {
		s.logger.Error("Failed to save flight record", "error", err)
		s.metrics.IncError("create_flight")
		return nil, fmt.Errorf("failed to save flight record: %w", err)
	}

	s.metrics.IncFlightsLogged()
	s.logger.Info("Flight logged",
		"id", record.ID,
		"date", utils.EpochToCalendarDay(record.Date),
		"aircraft", record.Aircraft,
		"duration", record.Duration)

	return record, nil
}

// buildRecord returns the validated record, or the metric reason and error of
// the first failed check. A store failure has no reason.
func (s *FlightLogService) buildRecord(ctx context.Context, input FlightInput) (*entity.FlightRecord, string, error) {
	date, err := utils.DateToEpoch(strings.TrimSpace(input.Date))
	if err != nil {
		return nil, "invalid_date", invalidInput(err)
	}

	duration, err := utils.Duration(strings.TrimSpace(input.TakeoffTime), strings.TrimSpace(input.LandingTime))
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDuration) {
			return nil, "invalid_duration", invalidInput(err)
		}
		return nil, "invalid_time", invalidInput(err)
	}

	if !input.FlightType.Valid() {
		return nil, "invalid_flight_type", invalidInput(fmt.Errorf("unknown flight type %q", input.FlightType))
	}
	if !input.LandingType.Valid() {
		return nil, "invalid_landing_type", invalidInput(fmt.Errorf("unknown landing type %q", input.LandingType))
	}
	if input.LandingCount < 1 {
		return nil, "invalid_landing_count", invalidInput(fmt.Errorf("landing count must be at least 1, got %d", input.LandingCount))
	}

	record := &entity.FlightRecord{
		Date:         date,
		FlightType:   input.FlightType,
		TakeoffTime:  strings.TrimSpace(input.TakeoffTime),
		LandingTime:  strings.TrimSpace(input.LandingTime),
		Duration:     duration,
		LandingType:  input.LandingType,
		LandingCount: input.LandingCount,
	}

	refs := []struct {
		kind     entity.RosterKind
		id, name string
		dstID    *string
		dstName  *string
	}{
		{entity.RosterStudents, input.StudentID, input.Student, &record.StudentID, &record.Student},
		{entity.RosterInstructors, input.InstructorID, input.Instructor, &record.InstructorID, &record.Instructor},
		{entity.RosterAircraft, input.AircraftID, input.Aircraft, &record.AircraftID, &record.Aircraft},
		{entity.RosterExercises, input.ExerciseID, input.Exercise, &record.ExerciseID, &record.Exercise},
	}
	for _, ref := range refs {
		id, name, reason, err := s.resolve(ctx, ref.kind, strings.TrimSpace(ref.id), strings.TrimSpace(ref.name))
		if err != nil {
			return nil, reason, err
		}
		*ref.dstID = id
		*ref.dstName = name
	}

	return record, "", nil
}

// resolve links a roster reference to its entry. A name without a matching
// entry is kept as a free text label.
func (s *FlightLogService) resolve(ctx context.Context, kind entity.RosterKind, id, name string) (string, string, string, error) {
	if id != "" {
		entry, err := s.rosterRepo.Get(ctx, kind, id)
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", "unknown_roster_entry", invalidInput(fmt.Errorf("unknown %s id %q", kind, id))
		}
		if err != nil {
			return "", "", "", unavailable("get "+string(kind), err)
		}
		return entry.ID, entry.Name, "", nil
	}

	if name == "" {
		return "", "", "missing_field", invalidInput(fmt.Errorf("%s is required", kind))
	}

	entry, err := s.rosterRepo.FindByName(ctx, kind, name)
	if errors.Is(err, repository.ErrNotFound) {
		return "", name, "", nil
	}
	if err != nil {
		return "", "", "", unavailable("find "+string(kind), err)
	}
	return entry.ID, entry.Name, "", nil
}

// ListFlights returns the flights matching filter in insertion order
func (s *FlightLogService) ListFlights(ctx context.Context, filter entity.FlightFilter) ([]entity.FlightRecord, error) {
	if filter.Month != "" && !utils.ValidMonth(filter.Month) {
		return nil, invalidInput(fmt.Errorf("%w: %q", utils.ErrInvalidMonth, filter.Month))
	}

	var flights []entity.FlightRecord
	var err error
	if filter.IsEmpty() {
		flights, err = s.flightRepo.List(ctx)
	} else {
		flights, err = s.flightRepo.ListFiltered(ctx, filter)
	}
	if err != nil {
		s.logger.Error("Failed to list flights", "filter", filter, "error", err)
		s.metrics.IncError("list_flights")
		return nil, unavailable("list flights", err)
	}

	// stores narrow the scan, exact matching happens here
	return FilterFlights(flights, filter), nil
}

// ExportCSV renders the flights matching filter as a CSV document
func (s *FlightLogService) ExportCSV(ctx context.Context, filter entity.FlightFilter) ([]byte, error) {
	flights, err := s.ListFlights(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveCSVExport(len(flights))
	s.logger.Info("Exporting flights", "rows", len(flights), "filter", filter)

	return ExportCSV(flights), nil
}
