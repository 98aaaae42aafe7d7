package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveLookup("dictionary")
	m.ObserveLookup("dictionary")
	m.ObserveLookup("estimator")
	m.ObserveDocument(StatusOK, 0.001)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SyllableLookups.WithLabelValues("dictionary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyllableLookups.WithLabelValues("estimator")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DocumentsScored.WithLabelValues(StatusOK)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLookup("dictionary")
		m.ObserveDocument(StatusFailed, 1)
	})
}
