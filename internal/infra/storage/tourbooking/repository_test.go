package tourbooking

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

var scanColumns = []string{
	"id", "guest_id", "tour_id", "schedule_id", "status", "num_adults", "num_children",
	"base_price", "additional_fees", "discounts", "total_amount", "amount_paid", "payment_status",
	"contact_name", "contact_email", "contact_phone", "cancellation_reason", "cancelled_at",
	"created_at", "updated_at", "start_time", "end_time",
}

func bookingRow(id int64, status string, start time.Time) []driver.Value {
	return []driver.Value{
		id, int64(1), int64(2), int64(3), status, 2, 1,
		100.0, 10.0, 0.0, 310.0, 0.0, "unpaid",
		"Anna Smith", "anna@example.com", "+100", nil, nil,
		start, start, start, start.Add(24 * time.Hour),
	}
}

func TestCreateLinksCompanions(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO tour_bookings .* RETURNING id, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))
	mock.ExpectExec(`INSERT INTO tour_booking_companions \(booking_id,companion_id\) VALUES \(\$1,\$2\),\(\$3,\$4\) ON CONFLICT DO NOTHING`).
		WithArgs(int64(11), int64(21), int64(11), int64(22)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	booking, err := repo.Create(context.Background(), &domain.TourBooking{
		GuestID:      1,
		ScheduleID:   3,
		Status:       domain.TourBookingPending,
		NumAdults:    3,
		CompanionIDs: []int64{21, 22},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), booking.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithoutCompanions(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO tour_bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(12), now, now))

	_, err := repo.Create(context.Background(), &domain.TourBooking{GuestID: 1, NumAdults: 1})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM tour_bookings tb JOIN tour_schedules ts ON ts.id = tb.schedule_id WHERE tb.id = \$1`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(scanColumns).AddRow(bookingRow(11, "pending", start)...))
	mock.ExpectQuery(`SELECT companion_id FROM tour_booking_companions WHERE booking_id = \$1`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"companion_id"}).AddRow(int64(21)))

	booking, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, 3, booking.TotalGuests())
	assert.Equal(t, []int64{21}, booking.CompanionIDs)
	assert.Equal(t, domain.TourBookingActive, booking.CurrentStatus(start.Add(time.Hour)))
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM tour_bookings`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelSkipsTerminal(t *testing.T) {
	repo, mock := newRepo(t)
	at := time.Now()

	mock.ExpectExec(`UPDATE tour_bookings SET status = \$1, cancellation_reason = \$2, cancelled_at = \$3, updated_at = NOW\(\) WHERE id = \$4 AND status NOT IN \(\$5,\$6,\$7\)`).
		WithArgs(domain.TourBookingCancelled, "plans changed", at, int64(11), "completed", "cancelled", "declined").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 11, "plans changed", at)
	assert.ErrorIs(t, err, ErrCannotCancel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByGuest(t *testing.T) {
	repo, mock := newRepo(t)
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* WHERE tb.guest_id = \$1 ORDER BY ts.start_time DESC, tb.id DESC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(scanColumns).
			AddRow(bookingRow(11, "pending", start)...).
			AddRow(bookingRow(10, "cancelled", start)...))

	bookings, err := repo.ListByGuest(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, domain.TourBookingCancelled, bookings[1].Status)
}
