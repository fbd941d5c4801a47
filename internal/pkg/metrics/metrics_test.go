//go:build unit

package metrics_test

import (
	"testing"

	"queueless/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Booking("admitted")
	m.Booking("admitted")
	m.Booking("capacity_exceeded")
	m.EstimateUpdates(3)
	m.QueueDepth("cardiology", 4)

	count, err := testutil.GatherAndCount(reg, "queueless_bookings_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg, "queueless_queue_depth")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.Booking("admitted")
		m.Completion("served")
		m.EstimateUpdates(1)
		m.DispatchDropped("estimate")
		m.QueueDepth("x", 1)
		m.ForgetQueue("x")
	})
}
