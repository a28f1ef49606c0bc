package usecase

import (
	"context"
	"sort"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
)

type fakeFlightRepo struct {
	flights      []entity.FlightRecord
	err          error
	filteredCall int
}

func (r *fakeFlightRepo) List(ctx context.Context) ([]entity.FlightRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]entity.FlightRecord(nil), r.flights...), nil
}

func (r *fakeFlightRepo) ListFiltered(ctx context.Context, filter entity.FlightFilter) ([]entity.FlightRecord, error) {
	r.filteredCall++
	if r.err != nil {
		return nil, r.err
	}
	return FilterFlights(r.flights, filter), nil
}

func (r *fakeFlightRepo) Create(ctx context.Context, record *entity.FlightRecord) error {
	if r.err != nil {
		return r.err
	}
	r.flights = append(r.flights, *record)
	return nil
}

type fakeRosterRepo struct {
	entries map[string]entity.RosterEntry
	err     error
}

func newFakeRosterRepo(entries ...entity.RosterEntry) *fakeRosterRepo {
	r := &fakeRosterRepo{entries: make(map[string]entity.RosterEntry)}
	for _, e := range entries {
		r.entries[e.ID] = e
	}
	return r
}

func (r *fakeRosterRepo) List(ctx context.Context, kind entity.RosterKind) ([]entity.RosterEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []entity.RosterEntry
	for _, e := range r.entries {
		if e.Kind == kind {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeRosterRepo) Get(ctx context.Context, kind entity.RosterKind, id string) (*entity.RosterEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	e, ok := r.entries[id]
	if !ok || e.Kind != kind {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *fakeRosterRepo) FindByName(ctx context.Context, kind entity.RosterKind, name string) (*entity.RosterEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, e := range r.entries {
		if e.Kind == kind && e.Name == name {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRosterRepo) Add(ctx context.Context, entry *entity.RosterEntry) error {
	if r.err != nil {
		return r.err
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *fakeRosterRepo) Rename(ctx context.Context, kind entity.RosterKind, id, name string) error {
	e, err := r.Get(ctx, kind, id)
	if err != nil {
		return err
	}
	e.Name = name
	r.entries[id] = *e
	return nil
}

func (r *fakeRosterRepo) Delete(ctx context.Context, kind entity.RosterKind, id string) error {
	if _, err := r.Get(ctx, kind, id); err != nil {
		return err
	}
	delete(r.entries, id)
	return nil
}

type fakeAircraftRepo struct {
	manual []entity.ManualHourEntry
	log    []entity.HourLogEntry
	err    error
}

func (r *fakeAircraftRepo) ListManualHours(ctx context.Context) ([]entity.ManualHourEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.manual, nil
}

func (r *fakeAircraftRepo) RecordHours(ctx context.Context, aircraftID string, date int64, hours int) error {
	if r.err != nil {
		return r.err
	}
	r.log = append(r.log, entity.HourLogEntry{
		ID:         uint(len(r.log) + 1),
		AircraftID: aircraftID,
		Date:       date,
		Hours:      hours,
	})
	return nil
}

func (r *fakeAircraftRepo) HourLog(ctx context.Context, aircraftID string) ([]entity.HourLogEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []entity.HourLogEntry
	for _, e := range r.log {
		if e.AircraftID == aircraftID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeAircraftRepo) TotalHours(ctx context.Context, aircraftID string) (int, error) {
	entries, err := r.HourLog(ctx, aircraftID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, e := range entries {
		total += e.Hours
	}
	return total, nil
}
