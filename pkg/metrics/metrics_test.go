package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := NewWithRegisterer("field-service", prometheus.NewRegistry())

	m.ObserveOperation("complete_installation", "ok")
	m.ObserveOperation("complete_installation", "ok")
	m.ObserveOperation("complete_installation", "conflict")
	m.ObserveNotification("sent")
	m.ObserveCutoff("failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("complete_installation", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("complete_installation", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CutoffsTotal.WithLabelValues("failed")))
}

func TestObserve_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveOperation("reserve", "ok")
		m.ObserveNotification("dropped")
		m.ObserveCutoff("cut")
	})
}
