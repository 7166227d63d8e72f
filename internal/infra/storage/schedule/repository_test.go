package schedule

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/pkg/dbmetrics"
	"github.com/m04kA/tourism-booking-service/pkg/txmanager"
)

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func scheduleRow(id int64, total, booked int) *sqlmock.Rows {
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(scheduleColumns).AddRow(
		id, int64(3), start, start.Add(48*time.Hour), 120.5, total, booked, 2, "active", nil, nil, start, start,
	)
}

func TestGetByIDLocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM tour_schedules WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnRows(scheduleRow(5, 10, 4))

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	s, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, s.SlotsAvailable())
	assert.Equal(t, domain.ScheduleActive, s.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM tour_schedules WHERE id = \$1$`).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestReserveIsConditional(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(`UPDATE tour_schedules SET slots_booked = slots_booked \+ \$1, updated_at = NOW\(\) WHERE id = \$2 AND slots_booked \+ \$3 <= total_slots`).
		WithArgs(3, int64(5), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Reserve(context.Background(), 5, 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveRejectsWhenNoRowMatches(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(`UPDATE tour_schedules`).
		WithArgs(5, int64(5), 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Reserve(context.Background(), 5, 5), ErrInsufficientSlots)
}

func TestReleaseIsFloored(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(`UPDATE tour_schedules SET slots_booked = GREATEST\(slots_booked - \$1, 0\)`).
		WithArgs(4, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Release(context.Background(), 5, 4))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTourWithTranslations(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, name FROM tours WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "Lake Tour"))
	mock.ExpectQuery(`SELECT language, name FROM tour_translations WHERE tour_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"language", "name"}).AddRow("ru", "Тур на озеро"))

	tour, err := repo.GetTour(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Тур на озеро", tour.DisplayName("ru"))
	assert.Equal(t, "Lake Tour", tour.DisplayName("de"))
}

func TestGetByIDKeepsDriverErrorInChain(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM tour_schedules WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnError(&pq.Error{Code: "40001"})

	tx, err := db.Begin()
	require.NoError(t, err)

	_, err = repo.GetByID(dbmetrics.WithTx(context.Background(), tx), 5)
	assert.ErrorIs(t, err, ErrScanRow)
	assert.True(t, txmanager.IsRetryable(err))
}
