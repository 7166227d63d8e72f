package room

import (
	"context"
	"database/sql"
	"testing"

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

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM rooms WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(int64(2), int64(1), "Deluxe", 4, 4, 90.0, "AVAILABLE"))

	room, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomAvailable, room.Status)
	assert.Equal(t, 4, room.PersonLimit)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM rooms`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestReserveFlipsToOccupied(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE rooms SET current_availability = current_availability - \$1, status = CASE WHEN current_availability - \$2 <= 0 THEN \$3 ELSE status END WHERE id = \$4 AND current_availability >= \$5 AND status <> \$6`).
		WithArgs(2, 2, domain.RoomOccupied, int64(7), 2, domain.RoomMaintenance).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Reserve(context.Background(), 7, 2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveInsufficient(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE rooms`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Reserve(context.Background(), 7, 5), ErrInsufficientAvailability)
}

func TestReleaseCapsAtPersonLimit(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE rooms SET current_availability = LEAST\(person_limit, GREATEST\(current_availability \+ \$1, 0\)\)`).
		WithArgs(3, domain.RoomOccupied, 3, domain.RoomAvailable, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Release(context.Background(), 7, 3))
	require.NoError(t, mock.ExpectationsWereMet())
}
