package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/internal/interface/httpapi"
	"flightlog-service/internal/usecase"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/metrics"
)

type stubDashboard struct {
	snapshot *entity.DashboardSnapshot
	err      error
}

func (s *stubDashboard) GetDashboard(ctx context.Context) (*entity.DashboardSnapshot, error) {
	return s.snapshot, s.err
}

type stubFlights struct {
	lastFilter entity.FlightFilter
	lastInput  usecase.FlightInput
	flights    []entity.FlightRecord
	err        error
}

func (s *stubFlights) LogFlight(ctx context.Context, input usecase.FlightInput) (*entity.FlightRecord, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &entity.FlightRecord{ID: "f1", Student: input.Student, Duration: 90}, nil
}

func (s *stubFlights) ListFlights(ctx context.Context, filter entity.FlightFilter) ([]entity.FlightRecord, error) {
	s.lastFilter = filter
	return s.flights, s.err
}

func (s *stubFlights) ExportCSV(ctx context.Context, filter entity.FlightFilter) ([]byte, error) {
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return usecase.ExportCSV(s.flights), nil
}

type stubRosters struct {
	err error
}

func (s *stubRosters) List(ctx context.Context, kind entity.RosterKind) ([]entity.RosterEntry, error) {
	return []entity.RosterEntry{{ID: "1", Kind: kind, Name: "Alice"}}, s.err
}

func (s *stubRosters) Add(ctx context.Context, kind entity.RosterKind, name string) (*entity.RosterEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.RosterEntry{ID: "new", Kind: kind, Name: name}, nil
}

func (s *stubRosters) Rename(ctx context.Context, kind entity.RosterKind, id, name string) (*entity.RosterEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.RosterEntry{ID: id, Kind: kind, Name: name}, nil
}

func (s *stubRosters) Delete(ctx context.Context, kind entity.RosterKind, id string) error {
	return s.err
}

func (s *stubRosters) RecordAircraftHours(ctx context.Context, aircraftID, date string, hours int) (int, error) {
	return 10 + hours, s.err
}

func (s *stubRosters) AircraftHourLog(ctx context.Context, aircraftID string) ([]entity.HourLogEntry, error) {
	return []entity.HourLogEntry{{ID: 1, AircraftID: aircraftID, Hours: 10}}, s.err
}

func (s *stubRosters) AircraftTotalHours(ctx context.Context, aircraftID string) (int, error) {
	return 10, s.err
}

func newTestRouter(d *stubDashboard, f *stubFlights, r *stubRosters) http.Handler {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("test", reg)
	h := httpapi.NewHandler(d, f, r, logger.NewNopLogger())
	return NewRouter(h, m, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), logger.NewNopLogger())
}

func serve(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndMetrics(t *testing.T) {
	handler := newTestRouter(&stubDashboard{}, &stubFlights{}, &stubRosters{})

	if rec := serve(t, handler, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("/health status = %d", rec.Code)
	}

	serve(t, handler, http.MethodGet, "/api/flights", "")
	rec := serve(t, handler, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "test_http_requests_total") {
		t.Errorf("/metrics status = %d, body lacks http_requests_total", rec.Code)
	}
}

func TestGetDashboard(t *testing.T) {
	snapshot := &entity.DashboardSnapshot{
		DailyFlightCount:      2,
		DailyMinutes:          150,
		MonthlyMinutes:        60,
		Utilization:           []entity.UtilizationRow{{AircraftName: "OK-ABC", TotalMinutes: 150}},
		MaxUtilizationMinutes: 150,
	}
	handler := newTestRouter(&stubDashboard{snapshot: snapshot}, &stubFlights{}, &stubRosters{})

	rec := serve(t, handler, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["dailyHours"] != "2h 30m" || body["monthlyHours"] != "1h" {
		t.Errorf("hours = (%v, %v), want (2h 30m, 1h)", body["dailyHours"], body["monthlyHours"])
	}
	if body["dailyFlightCount"] != float64(2) {
		t.Errorf("dailyFlightCount = %v, want 2", body["dailyFlightCount"])
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: bad", usecase.ErrInvalidInput), http.StatusBadRequest},
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"conflict", fmt.Errorf("%w: taken", usecase.ErrAlreadyExists), http.StatusConflict},
		{"unavailable", fmt.Errorf("%w: down", repository.ErrDataUnavailable), http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestRouter(&stubDashboard{err: tt.err}, &stubFlights{}, &stubRosters{})
			rec := serve(t, handler, http.MethodGet, "/api/dashboard", "")
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Errorf("body = %s, want an error object", rec.Body)
			}
		})
	}
}

func TestFlightsEndpoints(t *testing.T) {
	flights := &stubFlights{flights: []entity.FlightRecord{
		{ID: "1", Student: "Alice", FlightType: entity.FlightTypeSolo, LandingType: entity.LandingTypeDay, Duration: 30, LandingCount: 1},
	}}
	handler := newTestRouter(&stubDashboard{}, flights, &stubRosters{})

	rec := serve(t, handler, http.MethodGet, "/api/flights?month=2024-03&student=Alice", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	want := entity.FlightFilter{Month: "2024-03", Student: "Alice"}
	if flights.lastFilter != want {
		t.Errorf("filter = %+v, want %+v", flights.lastFilter, want)
	}

	rec = serve(t, handler, http.MethodPost, "/api/flights", `{"date":"2024-03-15","student":"Alice","takeoffTime":"09:00","landingTime":"10:30"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body)
	}
	if flights.lastInput.Student != "Alice" || flights.lastInput.TakeoffTime != "09:00" {
		t.Errorf("input = %+v", flights.lastInput)
	}

	rec = serve(t, handler, http.MethodPost, "/api/flights", `{"unknown":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown field status = %d, want 400", rec.Code)
	}

	rec = serve(t, handler, http.MethodGet, "/api/flights/export?aircraft=OK-ABC", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "flight-log-") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "\uFEFFDate,Student") {
		t.Errorf("export body = %q", rec.Body.String())
	}
}

func TestRosterEndpoints(t *testing.T) {
	handler := newTestRouter(&stubDashboard{}, &stubFlights{}, &stubRosters{})

	tests := []struct {
		method, target, body string
		want                 int
	}{
		{http.MethodGet, "/api/rosters/students", "", http.StatusOK},
		{http.MethodPost, "/api/rosters/aircraft", `{"name":"OK-ABC"}`, http.StatusCreated},
		{http.MethodPut, "/api/rosters/aircraft/p1", `{"name":"OK-NEW"}`, http.StatusOK},
		{http.MethodDelete, "/api/rosters/aircraft/p1", "", http.StatusNoContent},
		{http.MethodGet, "/api/aircraft/p1/hours", "", http.StatusOK},
		{http.MethodPost, "/api/aircraft/p1/hours", `{"date":"2024-03-01","hours":2}`, http.StatusCreated},
		{http.MethodPost, "/api/rosters/aircraft", `not json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(t, handler, tt.method, tt.target, tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d, body = %s", rec.Code, tt.want, rec.Body)
			}
		})
	}
}

func TestAircraftHoursResponse(t *testing.T) {
	handler := newTestRouter(&stubDashboard{}, &stubFlights{}, &stubRosters{})

	rec := serve(t, handler, http.MethodPost, "/api/aircraft/p1/hours", `{"date":"2024-03-01","hours":2}`)
	var body struct {
		AircraftID string `json:"aircraftId"`
		TotalHours int    `json:"totalHours"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.AircraftID != "p1" || body.TotalHours != 12 {
		t.Errorf("body = %+v, want p1 with 12 hours", body)
	}
}
