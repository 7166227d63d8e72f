package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	accommodationRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/accommodationbooking"
	tourBookingRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/tourbooking"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
	"github.com/m04kA/tourism-booking-service/pkg/logger"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return testNow }

type fakeTourBookings struct {
	bookings map[int64]*domain.TourBooking
}

func (f *fakeTourBookings) GetByID(_ context.Context, id int64) (*domain.TourBooking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, tourBookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeTourBookings) Cancel(_ context.Context, id int64, reason string, at time.Time) error {
	b := f.bookings[id]
	if b.Status.IsTerminal() {
		return tourBookingRepo.ErrCannotCancel
	}
	b.Status = domain.TourBookingCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &at
	return nil
}

type fakeAccommodationBookings struct {
	bookings map[int64]*domain.AccommodationBooking
}

func (f *fakeAccommodationBookings) GetByID(_ context.Context, id int64) (*domain.AccommodationBooking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, accommodationRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeAccommodationBookings) Cancel(_ context.Context, id int64, from domain.AccommodationBookingStatus, reason string, at time.Time) error {
	b := f.bookings[id]
	if b.Status != from {
		return accommodationRepo.ErrStatusConflict
	}
	b.Status = domain.AccommodationCancelled
	b.CancellationReason = &reason
	return nil
}

type fakeSchedules struct {
	capacity map[int64]domain.Capacity
}

func (f *fakeSchedules) Release(_ context.Context, id int64, guestCount int) error {
	f.capacity[id] = f.capacity[id].Release(guestCount)
	return nil
}

func (f *fakeSchedules) GetTour(_ context.Context, tourID int64) (*domain.Tour, error) {
	return &domain.Tour{ID: tourID, Name: "Lake Tour"}, nil
}

type fakeRooms struct {
	rooms map[int64]domain.Room
	err   error
}

func (f *fakeRooms) Release(_ context.Context, id int64, guestCount int) error {
	if f.err != nil {
		return f.err
	}
	f.rooms[id] = f.rooms[id].Release(guestCount)
	return nil
}

type fakeGuests struct{}

func (fakeGuests) GetByID(_ context.Context, id int64) (*domain.Guest, error) {
	return &domain.Guest{ID: id, Email: "guest@example.com", PreferredLanguage: "en"}, nil
}

type fakeNotifier struct {
	tour          []string
	accommodation []string
}

func (f *fakeNotifier) TourBookingCancelled(_ context.Context, _ notifications.Recipient, _ *domain.TourBooking, tourName, reason string) {
	f.tour = append(f.tour, tourName+": "+reason)
}

func (f *fakeNotifier) AccommodationBookingCancelled(_ context.Context, _ notifications.Recipient, _ *domain.AccommodationBooking, reason string) {
	f.accommodation = append(f.accommodation, reason)
}

type nopMetrics struct{}

func (nopMetrics) RecordBooking(string, string) {}

// inlineTx откатывает изменения счетчиков, если функция вернула ошибку
type inlineTx struct {
	schedules *fakeSchedules
	rooms     *fakeRooms
}

func (tx *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	capSnap := make(map[int64]domain.Capacity, len(tx.schedules.capacity))
	for k, v := range tx.schedules.capacity {
		capSnap[k] = v
	}
	roomSnap := make(map[int64]domain.Room, len(tx.rooms.rooms))
	for k, v := range tx.rooms.rooms {
		roomSnap[k] = v
	}
	if err := fn(ctx); err != nil {
		tx.schedules.capacity = capSnap
		tx.rooms.rooms = roomSnap
		return err
	}
	return nil
}

type fixture struct {
	uc        *UseCase
	tours     *fakeTourBookings
	stays     *fakeAccommodationBookings
	schedules *fakeSchedules
	rooms     *fakeRooms
	notifier  *fakeNotifier
}

func newFixture() *fixture {
	start := testNow.AddDate(0, 0, 10)
	f := &fixture{
		tours: &fakeTourBookings{bookings: map[int64]*domain.TourBooking{
			1: {ID: 1, GuestID: 5, TourID: 7, ScheduleID: 100, Status: domain.TourBookingPending, NumAdults: 3, NumChildren: 1,
				ScheduleStart: start, ScheduleEnd: start.AddDate(0, 0, 2)},
			2: {ID: 2, GuestID: 5, TourID: 7, ScheduleID: 100, Status: domain.TourBookingCancelled, NumAdults: 1,
				ScheduleStart: start, ScheduleEnd: start.AddDate(0, 0, 2)},
			3: {ID: 3, GuestID: 5, TourID: 7, ScheduleID: 100, Status: domain.TourBookingPending, NumAdults: 1,
				ScheduleStart: testNow.AddDate(0, 0, -5), ScheduleEnd: testNow.AddDate(0, 0, -3)},
		}},
		stays: &fakeAccommodationBookings{bookings: map[int64]*domain.AccommodationBooking{
			10: {ID: 10, GuestID: 5, RoomID: 50, NumGuests: 2, Status: domain.AccommodationConfirmed},
			11: {ID: 11, GuestID: 5, RoomID: 50, NumGuests: 2, Status: domain.AccommodationPending},
			12: {ID: 12, GuestID: 5, RoomID: 50, NumGuests: 2, Status: domain.AccommodationDeclined},
		}},
		schedules: &fakeSchedules{capacity: map[int64]domain.Capacity{100: {Total: 4, Booked: 4}}},
		rooms: &fakeRooms{rooms: map[int64]domain.Room{
			50: {ID: 50, PersonLimit: 4, CurrentAvailability: 0, Status: domain.RoomOccupied},
		}},
		notifier: &fakeNotifier{},
	}

	f.uc = NewUseCase(f.tours, f.stays, f.schedules, f.rooms, fakeGuests{}, f.notifier, nopMetrics{},
		&inlineTx{schedules: f.schedules, rooms: f.rooms}, logger.NewNop())
	f.uc.timeProvider = fixedTime{}
	return f
}

func owner() domain.Actor { return domain.Actor{UserID: 5, Role: domain.RoleGuest} }

func TestExecuteTourReleasesCapacity(t *testing.T) {
	f := newFixture()
	require.Equal(t, 0, f.schedules.capacity[100].Available())

	resp, err := f.uc.ExecuteTour(context.Background(), &Request{BookingID: 1, Actor: owner(), Reason: "  plans changed "})
	require.NoError(t, err)

	assert.Equal(t, string(domain.TourBookingCancelled), resp.Status)
	assert.Equal(t, "plans changed", resp.CancellationReason)
	assert.Equal(t, 4, resp.ReleasedSlots)
	assert.Equal(t, 4, f.schedules.capacity[100].Available())
	assert.Equal(t, domain.TourBookingCancelled, f.tours.bookings[1].Status)
	assert.Equal(t, []string{"Lake Tour: plans changed"}, f.notifier.tour)
}

func TestExecuteTourByStaff(t *testing.T) {
	f := newFixture()

	_, err := f.uc.ExecuteTour(context.Background(), &Request{BookingID: 1, Actor: domain.Actor{UserID: 99, Role: domain.RoleEmployee}, Reason: "weather"})
	assert.NoError(t, err)
}

func TestExecuteTourRejections(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "stranger", req: Request{BookingID: 1, Actor: domain.Actor{UserID: 6, Role: domain.RoleGuest}, Reason: "x"}, wantErr: ErrPermissionDenied},
		{name: "already cancelled", req: Request{BookingID: 2, Actor: owner(), Reason: "x"}, wantErr: ErrInvalidTransition},
		{name: "completed by time", req: Request{BookingID: 3, Actor: owner(), Reason: "x"}, wantErr: ErrInvalidTransition},
		{name: "missing", req: Request{BookingID: 404, Actor: owner(), Reason: "x"}, wantErr: ErrBookingNotFound},
		{name: "empty reason", req: Request{BookingID: 1, Actor: owner(), Reason: "   "}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.ExecuteTour(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 4, f.schedules.capacity[100].Booked)
			assert.Empty(t, f.notifier.tour)
		})
	}
}

func TestExecuteAccommodationConfirmedReleasesRoom(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.ExecuteAccommodation(context.Background(), &Request{BookingID: 10, Actor: owner(), Reason: "sick"})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.ReleasedSlots)
	room := f.rooms.rooms[50]
	assert.Equal(t, 2, room.CurrentAvailability)
	assert.Equal(t, domain.RoomAvailable, room.Status)
	assert.Equal(t, []string{"sick"}, f.notifier.accommodation)
}

func TestExecuteAccommodationPendingDoesNotTouchRoom(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.ExecuteAccommodation(context.Background(), &Request{BookingID: 11, Actor: owner(), Reason: "sick"})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.ReleasedSlots)
	assert.Equal(t, 0, f.rooms.rooms[50].CurrentAvailability)
	assert.Equal(t, domain.AccommodationCancelled, f.stays.bookings[11].Status)
}

func TestExecuteAccommodationTerminal(t *testing.T) {
	f := newFixture()

	_, err := f.uc.ExecuteAccommodation(context.Background(), &Request{BookingID: 12, Actor: owner(), Reason: "sick"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecuteAccommodationReleaseFailureKeepsBooking(t *testing.T) {
	f := newFixture()
	f.rooms.err = errors.New("deadlock")

	_, err := f.uc.ExecuteAccommodation(context.Background(), &Request{BookingID: 10, Actor: owner(), Reason: "sick"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.AccommodationConfirmed, f.stays.bookings[10].Status)
}

func TestValidateRequestReasonLength(t *testing.T) {
	long := make([]rune, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'я'
	}

	_, err := validateRequest(&Request{BookingID: 1, Actor: owner(), Reason: string(long)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	reason, err := validateRequest(&Request{BookingID: 1, Actor: owner(), Reason: string(long[:domain.MaxCancellationReasonLength])})
	require.NoError(t, err)
	assert.Len(t, []rune(reason), domain.MaxCancellationReasonLength)
}
