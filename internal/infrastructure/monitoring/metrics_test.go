package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUptimeAdvancesWithoutRefresher(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	time.Sleep(20 * time.Millisecond)

	// The gauge derives uptime at scrape time; no goroutine feeds it.
	first := testutil.ToFloat64(m.Uptime)
	assert.Greater(t, first, 0.0)

	time.Sleep(20 * time.Millisecond)
	assert.Greater(t, testutil.ToFloat64(m.Uptime), first)
}

func TestUptimeRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() == "gridplane_uptime_seconds" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRecordReconciliation(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordReconciliation(true, false, 1, 50*time.Millisecond)
	m.RecordReconciliation(false, true, 6, 400*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReconciliationsTotal.WithLabelValues(ResultConverged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReconciliationsTotal.WithLabelValues(ResultDegraded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConstraintsDetected))
}
