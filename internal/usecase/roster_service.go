package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/utils"
)

// RosterService manages the school's rosters and the aircraft hour log
type RosterService struct {
	rosterRepo   repository.RosterRepository
	aircraftRepo repository.AircraftRepository
	logger       logger.Logger
	now          func() time.Time
}

// NewRosterService creates a new roster service
func NewRosterService(
	rosterRepo repository.RosterRepository,
	aircraftRepo repository.AircraftRepository,
	logger logger.Logger,
) *RosterService {
	return &RosterService{
		rosterRepo:   rosterRepo,
		aircraftRepo: aircraftRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func checkKind(kind entity.RosterKind) error {
	if !kind.Valid() {
		return invalidInput(fmt.Errorf("unknown roster %q", kind))
	}
	return nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalidInput(errors.New("name is required"))
	}
	return name, nil
}

// List returns the entries of a roster
func (s *RosterService) List(ctx context.Context, kind entity.RosterKind) ([]entity.RosterEntry, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	entries, err := s.rosterRepo.List(ctx, kind)
	if err != nil {
		return nil, unavailable("list "+string(kind), err)
	}
	return entries, nil
}

// Add creates a roster entry with a fresh id
func (s *RosterService) Add(ctx context.Context, kind entity.RosterKind, name string) (*entity.RosterEntry, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, kind, name, ""); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entry := &entity.RosterEntry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.rosterRepo.Add(ctx, entry); err != nil {
		s.logger.Error("Failed to add roster entry", "kind", kind, "name", name, "error", err)
		return nil, fmt.Errorf("failed to add %s entry: %w", kind, err)
	}

	s.logger.Info("Roster entry added", "kind", kind, "id", entry.ID, "name", name)
	return entry, nil
}

// Rename changes the name of an entry. Flights keep referencing it by id.
func (s *RosterService) Rename(ctx context.Context, kind entity.RosterKind, id, name string) (*entity.RosterEntry, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, kind, name, id); err != nil {
		return nil, err
	}

	if err := s.rosterRepo.Rename(ctx, kind, id, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Failed to rename roster entry", "kind", kind, "id", id, "error", err)
		return nil, fmt.Errorf("failed to rename %s entry: %w", kind, err)
	}

	entry, err := s.rosterRepo.Get(ctx, kind, id)
	if err != nil {
		return nil, unavailable("get "+string(kind), err)
	}

	s.logger.Info("Roster entry renamed", "kind", kind, "id", id, "name", name)
	return entry, nil
}

// Delete removes an entry. Flights already logged keep their name labels.
func (s *RosterService) Delete(ctx context.Context, kind entity.RosterKind, id string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if err := s.rosterRepo.Delete(ctx, kind, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		s.logger.Error("Failed to delete roster entry", "kind", kind, "id", id, "error", err)
		return fmt.Errorf("failed to delete %s entry: %w", kind, err)
	}

	s.logger.Info("Roster entry deleted", "kind", kind, "id", id)
	return nil
}

func (s *RosterService) ensureNameFree(ctx context.Context, kind entity.RosterKind, name, selfID string) error {
	existing, err := s.rosterRepo.FindByName(ctx, kind, name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return unavailable("find "+string(kind), err)
	case existing.ID == selfID:
		return nil
	default:
		return fmt.Errorf("%w: %s %q", ErrAlreadyExists, kind, name)
	}
}

// RecordAircraftHours adds hours flown by an aircraft on date and returns the
// aircraft's new total
func (s *RosterService) RecordAircraftHours(ctx context.Context, aircraftID, date string, hours int) (int, error) {
	if hours <= 0 {
		return 0, invalidInput(fmt.Errorf("hours must be positive, got %d", hours))
	}
	ts, err := utils.DateToEpoch(strings.TrimSpace(date))
	if err != nil {
		return 0, invalidInput(err)
	}
	if _, err := s.rosterRepo.Get(ctx, entity.RosterAircraft, aircraftID); err != nil {
		return 0, unavailable("get aircraft", err)
	}

	if err := s.aircraftRepo.RecordHours(ctx, aircraftID, ts, hours); err != nil {
		s.logger.Error("Failed to record aircraft hours", "aircraftId", aircraftID, "error", err)
		return 0, fmt.Errorf("failed to record aircraft hours: %w", err)
	}

	total, err := s.aircraftRepo.TotalHours(ctx, aircraftID)
	if err != nil {
		return 0, unavailable("total hours", err)
	}

	s.logger.Info("Aircraft hours recorded", "aircraftId", aircraftID, "hours", hours, "total", total)
	return total, nil
}

// AircraftHourLog returns the hour log of an aircraft, oldest first
func (s *RosterService) AircraftHourLog(ctx context.Context, aircraftID string) ([]entity.HourLogEntry, error) {
	if _, err := s.rosterRepo.Get(ctx, entity.RosterAircraft, aircraftID); err != nil {
		return nil, unavailable("get aircraft", err)
	}
	entries, err := s.aircraftRepo.HourLog(ctx, aircraftID)
	if err != nil {
		return nil, unavailable("hour log", err)
	}
	return entries, nil
}

// AircraftTotalHours returns the sum of an aircraft's hour log
func (s *RosterService) AircraftTotalHours(ctx context.Context, aircraftID string) (int, error) {
	if _, err := s.rosterRepo.Get(ctx, entity.RosterAircraft, aircraftID); err != nil {
		return 0, unavailable("get aircraft", err)
	}
	total, err := s.aircraftRepo.TotalHours(ctx, aircraftID)
	if err != nil {
		return 0, unavailable("total hours", err)
	}
	return total, nil
}
