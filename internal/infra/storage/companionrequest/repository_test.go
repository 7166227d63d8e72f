package companionrequest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestGetByPair(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM companion_requests WHERE recipient_id = \$1 AND sender_id = \$2`).
		WithArgs(int64(2), int64(1)).
		WillReturnRows(sqlmock.NewRows(requestColumns).
			AddRow(int64(3), int64(1), int64(2), "declined", nil, "Family", now, now))

	req, err := repo.GetByPair(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestDeclined, req.Status)
	assert.Equal(t, "Family", req.Group())
}

func TestGetByPairNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM companion_requests`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByPair(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestListBetweenBothDirections(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`WHERE \(+recipient_id = \$1 AND sender_id = \$2\)? OR \(?recipient_id = \$3 AND sender_id = \$4\)+`).
		WithArgs(int64(2), int64(1), int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(requestColumns))

	requests, err := repo.ListBetween(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestCountPending(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM companion_requests WHERE recipient_id = \$1 AND status = \$2`).
		WithArgs(int64(2), domain.RequestPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountPending(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestUpdateResetsRow(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE companion_requests SET status = \$1, message = \$2, group_name = \$3, updated_at = NOW\(\) WHERE id = \$4`).
		WithArgs(domain.RequestPending, "again?", "Friends", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &domain.CompanionRequest{
		ID:        3,
		Status:    domain.RequestPending,
		Message:   ptr.Ptr("again?"),
		GroupName: ptr.Ptr("Friends"),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
