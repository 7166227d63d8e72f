package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBooking(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, "test")

	m.RecordBooking("tour", OutcomeCreated)
	m.RecordBooking("tour", OutcomeCreated)
	m.RecordBooking("tour", OutcomeRejectedCapacity)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingOutcomes.WithLabelValues("tour", OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingOutcomes.WithLabelValues("tour", OutcomeRejectedCapacity)))
}

func TestRecordBookingNilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.RecordBooking("tour", OutcomeCreated) })
}
