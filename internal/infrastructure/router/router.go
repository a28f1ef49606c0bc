package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"flightlog-service/internal/interface/httpapi"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/metrics"
)

// NewRouter wires the HTTP API, health check and metrics endpoint.
// A nil metrics disables instrumentation; a nil metricsHandler omits /metrics.
func NewRouter(h *httpapi.Handler, m *metrics.Metrics, metricsHandler http.Handler, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(log))
	r.Use(chimw.Recoverer)
	if m != nil {
		r.Use(m.HTTPMiddleware)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", h.GetDashboard)

		r.Route("/flights", func(r chi.Router) {
			r.Get("/", h.ListFlights)
			r.Post("/", h.CreateFlight)
			r.Get("/export", h.ExportFlights)
		})

		r.Route("/rosters/{kind}", func(r chi.Router) {
			r.Get("/", h.ListRoster)
			r.Post("/", h.AddRosterEntry)
			r.Put("/{id}", h.RenameRosterEntry)
			r.Delete("/{id}", h.DeleteRosterEntry)
		})

		r.Get("/aircraft/{id}/hours", h.GetAircraftHours)
		r.Post("/aircraft/{id}/hours", h.RecordAircraftHours)
	})

	return r
}

// requestLogger logs one line per served request
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Debug("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"requestId", chimw.GetReqID(r.Context()),
				"duration", time.Since(start))
		})
	}
}
