package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exported by the service.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Errors          *prometheus.CounterVec
	RecordChanges   *prometheus.CounterVec
	PayrollsSaved   prometheus.Counter
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hr_http_requests_total",
			Help: "Total HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hr_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		Errors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hr_http_errors_total",
			Help: "Error responses by route, method and error code.",
		}, []string{"route", "method", "code"}),
		RecordChanges: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hr_admin_record_changes_total",
			Help: "Records added, changed or deleted through the admin API.",
		}, []string{"resource", "action"}),
		PayrollsSaved: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hr_payrolls_saved_total",
			Help: "Payroll saves that recomputed the salary.",
		}),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.Errors.WithLabelValues(route, method, code).Inc()
}

// RecordChange counts an admin write.
func (m *Metrics) RecordChange(resource, action string) {
	if m == nil {
		return
	}
	m.RecordChanges.WithLabelValues(resource, action).Inc()
}

// RecordPayrollSaved counts a payroll salary computation.
func (m *Metrics) RecordPayrollSaved() {
	if m == nil {
		return
	}
	m.PayrollsSaved.Inc()
}
