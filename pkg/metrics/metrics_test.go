package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("dmar", prometheus.NewRegistry())

	m.RecordSubmission("custom", "confirmed")
	m.RecordSubmission("custom", "confirmed")
	m.RecordSubmission("package", "rejected")
	m.ObserveBackendRequest("packages", "ok", 10*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/wizard", 200, time.Millisecond)
	m.RecordHistoryWriteFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingSubmissions.WithLabelValues("custom", "confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingSubmissions.WithLabelValues("package", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backendRequests.WithLabelValues("packages", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/wizard", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.historyWriteFailures))
}
