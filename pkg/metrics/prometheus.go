package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FlightsLogged      prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	DashboardBuilds    prometheus.Counter
	DashboardBuildTime prometheus.Histogram
	CSVExports         prometheus.Counter
	CSVExportRows      prometheus.Histogram
	ErrorsCount        *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// NewMetrics creates new prometheus metrics registered on reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FlightsLogged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_logged_total",
			Help:      "The total number of flights logged",
		}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "The total number of rejected flight entries",
		}, []string{"reason"}),
		DashboardBuilds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_builds_total",
			Help:      "The total number of dashboard snapshots built",
		}),
		DashboardBuildTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dashboard_build_seconds",
			Help:      "Time taken to fetch data and build a dashboard snapshot",
			Buckets:   prometheus.DefBuckets,
		}),
		CSVExports: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "csv_exports_total",
			Help:      "The total number of CSV exports",
		}),
		CSVExportRows: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "csv_export_rows",
			Help:      "Number of flight rows per CSV export",
			Buckets:   []float64{0, 10, 50, 100, 500, 1000, 5000, 10000},
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "code"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}
}

// The helpers below accept a nil receiver so callers can run without metrics

// IncFlightsLogged counts one stored flight
func (m *Metrics) IncFlightsLogged() {
	if m == nil {
		return
	}
	m.FlightsLogged.Inc()
}

// IncValidationFailure counts one rejected flight entry
func (m *Metrics) IncValidationFailure(reason string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(reason).Inc()
}

// ObserveDashboardBuild records one dashboard build
func (m *Metrics) ObserveDashboardBuild(d time.Duration) {
	if m == nil {
		return
	}
	m.DashboardBuilds.Inc()
	m.DashboardBuildTime.Observe(d.Seconds())
}

// ObserveCSVExport records one export of rows flights
func (m *Metrics) ObserveCSVExport(rows int) {
	if m == nil {
		return
	}
	m.CSVExports.Inc()
	m.CSVExportRows.Observe(float64(rows))
}

// IncError counts one failed operation
func (m *Metrics) IncError(operation string) {
	if m == nil {
		return
	}
	m.ErrorsCount.WithLabelValues(operation).Inc()
}

// ObserveHTTPRequest records one served HTTP request
func (m *Metrics) ObserveHTTPRequest(method, route, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, code).Inc()
	m.HTTPDuration.WithLabelValues(method, route, code).Observe(d.Seconds())
}
