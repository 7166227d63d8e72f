package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	accommodationRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/accommodationbooking"
	tourRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/tourbooking"
	"github.com/m04kA/tourism-booking-service/pkg/logger"
)

var now = time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return now }

type fakeTours struct {
	items   map[int64]*domain.TourBooking
	listErr error
}

func (f *fakeTours) GetByID(_ context.Context, id int64) (*domain.TourBooking, error) {
	b, ok := f.items[id]
	if !ok {
		return nil, tourRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeTours) ListByGuest(_ context.Context, guestID int64) ([]*domain.TourBooking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.TourBooking
	for _, b := range f.items {
		if b.GuestID == guestID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeStays struct {
	items map[int64]*domain.AccommodationBooking
}

func (f *fakeStays) GetByID(_ context.Context, id int64) (*domain.AccommodationBooking, error) {
	b, ok := f.items[id]
	if !ok {
		return nil, accommodationRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeStays) ListByGuest(_ context.Context, guestID int64) ([]*domain.AccommodationBooking, error) {
	var out []*domain.AccommodationBooking
	for _, b := range f.items {
		if b.GuestID == guestID {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestService() (*Service, *fakeTours) {
	tours := &fakeTours{items: map[int64]*domain.TourBooking{
		1: {
			ID: 1, GuestID: 7, Status: domain.TourBookingPending, NumAdults: 2, NumChildren: 1,
			TotalAmount: 300, AmountPaid: 100,
			ScheduleStart: now.Add(-time.Hour), ScheduleEnd: now.Add(24 * time.Hour),
		},
		2: {
			ID: 2, GuestID: 7, Status: domain.TourBookingPending, NumAdults: 1,
			ScheduleStart: now.Add(-72 * time.Hour), ScheduleEnd: now.Add(-48 * time.Hour),
		},
		3: {
			ID: 3, GuestID: 7, Status: domain.TourBookingCancelled, NumAdults: 1,
			ScheduleStart: now.Add(-72 * time.Hour), ScheduleEnd: now.Add(-48 * time.Hour),
		},
	}}
	stays := &fakeStays{items: map[int64]*domain.AccommodationBooking{
		10: {
			ID: 10, GuestID: 7, RoomID: 4, Status: domain.AccommodationConfirmed, NumGuests: 2,
			CheckIn: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), CheckOut: time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC),
		},
	}}

	svc := NewService(tours, stays, logger.NewNop())
	svc.timeProvider = fixedTime{}
	return svc, tours
}

func TestGetTourBookingDerivesStatus(t *testing.T) {
	svc, _ := newTestService()
	owner := domain.Actor{UserID: 7, Role: domain.RoleGuest}

	resp, err := svc.GetTourBooking(context.Background(), 1, owner)
	require.NoError(t, err)
	assert.Equal(t, string(domain.TourBookingActive), resp.Status)
	assert.Equal(t, 3, resp.TotalGuests)
	assert.Equal(t, 200.0, resp.BalanceDue)
	assert.NotNil(t, resp.CompanionIDs)

	resp, err = svc.GetTourBooking(context.Background(), 2, owner)
	require.NoError(t, err)
	assert.Equal(t, string(domain.TourBookingCompleted), resp.Status)

	resp, err = svc.GetTourBooking(context.Background(), 3, owner)
	require.NoError(t, err)
	assert.Equal(t, string(domain.TourBookingCancelled), resp.Status)
}

func TestGetTourBookingAccess(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetTourBooking(context.Background(), 1, domain.Actor{UserID: 8, Role: domain.RoleGuest})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetTourBooking(context.Background(), 1, domain.Actor{UserID: 8, Role: domain.RoleEmployee})
	assert.NoError(t, err)

	_, err = svc.GetTourBooking(context.Background(), 99, domain.Actor{UserID: 7})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetAccommodationBooking(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.GetAccommodationBooking(context.Background(), 10, domain.Actor{UserID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", resp.CheckIn)
	assert.Equal(t, 3, resp.Nights)

	_, err = svc.GetAccommodationBooking(context.Background(), 10, domain.Actor{UserID: 8})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetAccommodationBooking(context.Background(), 11, domain.Actor{UserID: 7})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListGuestBookings(t *testing.T) {
	svc, tours := newTestService()

	resp, err := svc.ListGuestBookings(context.Background(), 7, domain.Actor{UserID: 7})
	require.NoError(t, err)
	assert.Len(t, resp.TourBookings, 3)
	assert.Len(t, resp.AccommodationBookings, 1)

	resp, err = svc.ListGuestBookings(context.Background(), 5, domain.Actor{UserID: 5})
	require.NoError(t, err)
	assert.NotNil(t, resp.TourBookings)
	assert.Empty(t, resp.TourBookings)

	_, err = svc.ListGuestBookings(context.Background(), 7, domain.Actor{UserID: 5})
	assert.ErrorIs(t, err, ErrAccessDenied)

	tours.listErr = errors.New("db down")
	_, err = svc.ListGuestBookings(context.Background(), 7, domain.Actor{UserID: 7})
	assert.ErrorIs(t, err, ErrInternal)
}
