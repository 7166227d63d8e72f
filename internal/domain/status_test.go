package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTourBookingStatus(t *testing.T) {
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 3, 18, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)
	during := start.Add(time.Hour)
	after := end.Add(time.Minute)

	tests := []struct {
		name   string
		now    time.Time
		stored TourBookingStatus
		want   TourBookingStatus
	}{
		{name: "pending before start", now: before, stored: TourBookingPending, want: TourBookingPending},
		{name: "pending becomes active", now: during, stored: TourBookingPending, want: TourBookingActive},
		{name: "active at exact start", now: start, stored: TourBookingPending, want: TourBookingActive},
		{name: "active at exact end", now: end, stored: TourBookingPending, want: TourBookingActive},
		{name: "pending becomes completed", now: after, stored: TourBookingPending, want: TourBookingCompleted},
		{name: "cancelled is sticky", now: during, stored: TourBookingCancelled, want: TourBookingCancelled},
		{name: "declined is sticky", now: after, stored: TourBookingDeclined, want: TourBookingDeclined},
		{name: "empty defaults to pending", now: before, stored: "", want: TourBookingPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTourBookingStatus(tt.now, start, end, tt.stored))
		})
	}
}

func TestDeriveScheduleStatus(t *testing.T) {
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	assert.Equal(t, ScheduleActive, DeriveScheduleStatus(start.Add(-time.Hour), start, end, ""))
	assert.Equal(t, ScheduleActive, DeriveScheduleStatus(start.Add(time.Hour), start, end, ScheduleActive))
	assert.Equal(t, ScheduleCompleted, DeriveScheduleStatus(end.Add(time.Second), start, end, ScheduleActive))
	assert.Equal(t, ScheduleCancelled, DeriveScheduleStatus(end.Add(time.Hour), start, end, ScheduleCancelled))
	assert.Equal(t, ScheduleCancelled, DeriveScheduleStatus(start.Add(time.Hour), start, end, ScheduleCancelled))
}

func TestScheduleBookable(t *testing.T) {
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	s := TourSchedule{StartTime: start, EndTime: start.Add(24 * time.Hour), Status: ScheduleActive, TotalSlots: 5}

	assert.True(t, s.IsBookable(start.Add(-time.Hour)))
	assert.False(t, s.IsBookable(start.Add(48*time.Hour)))

	s.Status = ScheduleCancelled
	assert.False(t, s.IsBookable(start.Add(-time.Hour)))
}

func TestDurationDays(t *testing.T) {
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DurationDays(start, start.Add(3*time.Hour)))
	assert.Equal(t, 1, DurationDays(start, start.Add(24*time.Hour)))
	assert.Equal(t, 2, DurationDays(start, start.Add(25*time.Hour)))
	assert.Equal(t, 1, DurationDays(start, start))
}

func TestTourBookingCanCancel(t *testing.T) {
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	b := TourBooking{Status: TourBookingPending, ScheduleStart: start, ScheduleEnd: start.Add(24 * time.Hour)}

	assert.NoError(t, b.CanCancel(start.Add(-time.Hour)))
	assert.NoError(t, b.CanCancel(start.Add(time.Hour)))
	assert.ErrorIs(t, b.CanCancel(start.Add(48*time.Hour)), ErrInvalidTransition)

	b.Status = TourBookingCancelled
	assert.ErrorIs(t, b.CanCancel(start.Add(-time.Hour)), ErrInvalidTransition)
}

func TestCalculateTourTotal(t *testing.T) {
	total, err := CalculateTourTotal(100, 3, 20, 50)
	require.NoError(t, err)
	assert.InDelta(t, 270.0, total, 0.001)

	_, err = CalculateTourTotal(10, 1, 0, 50)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = CalculateTourTotal(10, 0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)

	_, err = CalculateTourTotal(10, 2, -1, 0)
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestAccommodationTransitions(t *testing.T) {
	b := AccommodationBooking{Status: AccommodationPending}
	assert.NoError(t, b.CanDecide())
	assert.NoError(t, b.CanCancel())
	assert.False(t, b.HoldsCapacity())

	b.Status = AccommodationConfirmed
	assert.ErrorIs(t, b.CanDecide(), ErrInvalidTransition)
	assert.NoError(t, b.CanCancel())
	assert.True(t, b.HoldsCapacity())

	b.Status = AccommodationDeclined
	assert.ErrorIs(t, b.CanCancel(), ErrInvalidTransition)
}

func TestCalculateAccommodationTotal(t *testing.T) {
	checkIn := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	assert.InDelta(t, 300.0, CalculateAccommodationTotal(100, checkIn, checkIn.AddDate(0, 0, 3)), 0.001)
	assert.InDelta(t, 100.0, CalculateAccommodationTotal(100, checkIn, checkIn), 0.001)
}

func TestCompanionRequestTransitions(t *testing.T) {
	r := CompanionRequest{Status: RequestPending}
	require.NoError(t, r.Decline())
	assert.ErrorIs(t, r.Accept(), ErrInvalidTransition)

	group := "Family"
	require.NoError(t, r.Resend(nil, &group))
	assert.Equal(t, RequestPending, r.Status)
	assert.Equal(t, "Family", r.Group())

	assert.ErrorIs(t, r.Resend(nil, nil), ErrInvalidTransition)

	require.NoError(t, r.Accept())
	require.NoError(t, r.Resend(nil, nil))
	assert.Equal(t, DefaultFriendshipGroup, r.Group())
}
