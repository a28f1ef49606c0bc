package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/internal/usecase"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/utils"
)

// DashboardService is the dashboard use case needed by the handlers
type DashboardService interface {
	GetDashboard(ctx context.Context) (*entity.DashboardSnapshot, error)
}

// FlightLogService is the flight log use case needed by the handlers
type FlightLogService interface {
	LogFlight(ctx context.Context, input usecase.FlightInput) (*entity.FlightRecord, error)
	ListFlights(ctx context.Context, filter entity.FlightFilter) ([]entity.FlightRecord, error)
	ExportCSV(ctx context.Context, filter entity.FlightFilter) ([]byte, error)
}

// RosterService is the roster use case needed by the handlers
type RosterService interface {
	List(ctx context.Context, kind entity.RosterKind) ([]entity.RosterEntry, error)
	Add(ctx context.Context, kind entity.RosterKind, name string) (*entity.RosterEntry, error)
	Rename(ctx context.Context, kind entity.RosterKind, id, name string) (*entity.RosterEntry, error)
	Delete(ctx context.Context, kind entity.RosterKind, id string) error
	RecordAircraftHours(ctx context.Context, aircraftID, date string, hours int) (int, error)
	AircraftHourLog(ctx context.Context, aircraftID string) ([]entity.HourLogEntry, error)
	AircraftTotalHours(ctx context.Context, aircraftID string) (int, error)
}

// Handler serves the flight log HTTP API
type Handler struct {
	dashboard DashboardService
	flights   FlightLogService
	rosters   RosterService
	logger    logger.Logger
	now       func() time.Time
}

// NewHandler creates a new HTTP handler set
func NewHandler(dashboard DashboardService, flights FlightLogService, rosters RosterService, logger logger.Logger) *Handler {
	return &Handler{
		dashboard: dashboard,
		flights:   flights,
		rosters:   rosters,
		logger:    logger,
		now:       time.Now,
	}
}

type dashboardResponse struct {
	*entity.DashboardSnapshot
	DailyHours   string `json:"dailyHours"`
	MonthlyHours string `json:"monthlyHours"`
}

// GET /api/dashboard
// 200: dashboard snapshot
// 503: flights or manual hours could not be fetched
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboard.GetDashboard(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		DashboardSnapshot: snapshot,
		DailyHours:        utils.FormatHoursFromMinutes(snapshot.DailyMinutes),
		MonthlyHours:      utils.FormatHoursFromMinutes(snapshot.MonthlyMinutes),
	})
}

// GET /api/flights?month=YYYY-MM&student=...&aircraft=...
// 200: { "flights": [...], "count": n }
// 400: invalid month
func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.flights.ListFlights(r.Context(), filterFromQuery(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"flights": flights,
		"count":   len(flights),
	})
}

// POST /api/flights
// 201: the stored flight record
// 400: invalid input
func (h *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var input usecase.FlightInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	record, err := h.flights.LogFlight(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// GET /api/flights/export?month=YYYY-MM&student=...&aircraft=...
// 200: CSV attachment
func (h *Handler) ExportFlights(w http.ResponseWriter, r *http.Request) {
	data, err := h.flights.ExportCSV(r.Context(), filterFromQuery(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+usecase.ExportFilename(h.now())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// GET /api/rosters/{kind}
func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	entries, err := h.rosters.List(r.Context(), rosterKind(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

type rosterRequest struct {
	Name string `json:"name"`
}

// POST /api/rosters/{kind}
// 201: the new entry
// 409: name already on the roster
func (h *Handler) AddRosterEntry(w http.ResponseWriter, r *http.Request) {
	var req rosterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	entry, err := h.rosters.Add(r.Context(), rosterKind(r), req.Name)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// PUT /api/rosters/{kind}/{id}
func (h *Handler) RenameRosterEntry(w http.ResponseWriter, r *http.Request) {
	var req rosterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	entry, err := h.rosters.Rename(r.Context(), rosterKind(r), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// DELETE /api/rosters/{kind}/{id}
// 204: deleted
func (h *Handler) DeleteRosterEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.rosters.Delete(r.Context(), rosterKind(r), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/aircraft/{id}/hours
// 200: { "aircraftId": "...", "totalHours": n, "entries": [...] }
func (h *Handler) GetAircraftHours(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entries, err := h.rosters.AircraftHourLog(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	total, err := h.rosters.AircraftTotalHours(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"aircraftId": id,
		"totalHours": total,
		"entries":    entries,
	})
}

type hoursRequest struct {
	Date  string `json:"date"`
	Hours int    `json:"hours"`
}

// POST /api/aircraft/{id}/hours
// 201: { "aircraftId": "...", "totalHours": n }
func (h *Handler) RecordAircraftHours(w http.ResponseWriter, r *http.Request) {
	var req hoursRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	total, err := h.rosters.RecordAircraftHours(r.Context(), id, req.Date, req.Hours)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"aircraftId": id,
		"totalHours": total,
	})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, usecase.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrDataUnavailable):
		h.logger.Error("Data unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, "data unavailable")
	default:
		h.logger.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func filterFromQuery(r *http.Request) entity.FlightFilter {
	q := r.URL.Query()
	return entity.FlightFilter{
		Month:    strings.TrimSpace(q.Get("month")),
		Student:  q.Get("student"),
		Aircraft: q.Get("aircraft"),
	}
}

func rosterKind(r *http.Request) entity.RosterKind {
	return entity.RosterKind(chi.URLParam(r, "kind"))
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("only one JSON object is allowed")
	}

	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
