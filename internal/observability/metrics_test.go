package observability_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/hr-service/internal/observability"
)

func TestMetrics_Record(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	metrics.RecordRequest("/admin/employees", "GET", 200, 15*time.Millisecond)
	metrics.RecordRequest("/admin/employees", "GET", 200, 5*time.Millisecond)
	metrics.RecordError("/admin/employees/:id", "GET", "NOT_FOUND")
	metrics.RecordChange("payrolls", "ADDITION")
	metrics.RecordPayrollSaved()

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.Requests.WithLabelValues("/admin/employees", "GET", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Errors.WithLabelValues("/admin/employees/:id", "GET", "NOT_FOUND")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.RecordChanges.WithLabelValues("payrolls", "ADDITION")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.PayrollsSaved), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.RequestDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var metrics *observability.Metrics
	assert.NotPanics(t, func() {
		metrics.RecordRequest("/", "GET", 200, time.Millisecond)
		metrics.RecordError("/", "GET", "X")
		metrics.RecordChange("users", "CHANGE")
		metrics.RecordPayrollSaved()
	})
}
