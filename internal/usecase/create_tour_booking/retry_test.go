package create_tour_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	scheduleRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/schedule"
	"github.com/m04kA/tourism-booking-service/pkg/dbmetrics"
	"github.com/m04kA/tourism-booking-service/pkg/logger"
	"github.com/m04kA/tourism-booking-service/pkg/ptr"
	"github.com/m04kA/tourism-booking-service/pkg/txmanager"
)

const lockScheduleQuery = `SELECT .* FROM tour_schedules WHERE id = \$1 FOR UPDATE`

var scheduleRowColumns = []string{
	"id", "tour_id", "start_time", "end_time", "price", "total_slots", "slots_booked",
	"duration_days", "status", "cancellation_reason", "cancelled_at", "created_at", "updated_at",
}

func lockedScheduleRow(total, booked int) *sqlmock.Rows {
	start := testNow.AddDate(0, 1, 0)
	return sqlmock.NewRows(scheduleRowColumns).AddRow(
		int64(100), int64(7), start, start.Add(48*time.Hour), 50.0, total, booked, 2, "active", nil, nil, testNow, testNow,
	)
}

// newSQLFixture собирает use case поверх настоящего репозитория расписаний и менеджера транзакций
func newSQLFixture(t *testing.T, retries int) (*UseCase, *fakeBookings, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	guests := &fakeGuests{guests: map[int64]*domain.Guest{
		1:  {ID: 1, FirstName: "Anna", Email: "anna@example.com"},
		10: {ID: 10, FirstName: "Kid", MadeBy: ptr.Ptr(int64(1))},
	}}
	bookings := &fakeBookings{}

	uc := NewUseCase(
		guests,
		scheduleRepo.NewRepository(wrapped),
		bookings,
		&fakeNotifier{},
		&fakeMetrics{},
		txmanager.NewTransactionManager(wrapped, retries),
		logger.NewNop(),
	)
	uc.timeProvider = fixedTime{}

	return uc, bookings, mock
}

func expectSerializationConflict(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectQuery(lockScheduleQuery).
		WithArgs(int64(100)).
		WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"})
	mock.ExpectRollback()
}

func TestExecuteRetriesAfterSerializationConflict(t *testing.T) {
	uc, bookings, mock := newSQLFixture(t, 2)

	expectSerializationConflict(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(lockScheduleQuery).WithArgs(int64(100)).WillReturnRows(lockedScheduleRow(10, 4))
	mock.ExpectExec(`UPDATE tour_schedules`).WithArgs(3, int64(100), 3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT id, name FROM tours`).WillReturnError(errors.New("tours unavailable"))

	resp, err := uc.Execute(context.Background(), &Request{GuestID: 1, ScheduleID: 100, NumAdults: 3, CompanionIDs: []int64{10}})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.SlotsRemaining)
	assert.Equal(t, 1, bookings.count())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteRetryEndsInInsufficientCapacity(t *testing.T) {
	uc, bookings, mock := newSQLFixture(t, 2)

	expectSerializationConflict(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(lockScheduleQuery).WithArgs(int64(100)).WillReturnRows(lockedScheduleRow(5, 4))
	mock.ExpectRollback()

	_, err := uc.Execute(context.Background(), &Request{GuestID: 1, ScheduleID: 100, NumAdults: 3})
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, bookings.count())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteKeepsCauseWhenRetriesExhausted(t *testing.T) {
	uc, _, mock := newSQLFixture(t, 1)

	expectSerializationConflict(mock)
	expectSerializationConflict(mock)

	_, err := uc.Execute(context.Background(), &Request{GuestID: 1, ScheduleID: 100, NumAdults: 1})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, scheduleRepo.ErrScanRow)
	assert.True(t, txmanager.IsRetryable(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
