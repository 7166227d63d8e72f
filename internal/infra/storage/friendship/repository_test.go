package friendship

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestCreateIfAbsentReportsInsert(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`INSERT INTO friendships \(user_id,friend_id,group_name\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(user_id, friend_id\) DO NOTHING`).
		WithArgs(int64(1), int64(2), "Friends").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO friendships`).
		WithArgs(int64(1), int64(2), "Family").
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.CreateIfAbsent(context.Background(), 1, 2, "Friends")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(context.Background(), 1, 2, "Family")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestDeletePair(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM friendships WHERE .*friend_id = \$1 AND user_id = \$2.* OR .*friend_id = \$3 AND user_id = \$4`).
		WithArgs(int64(2), int64(1), int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeletePair(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestExists(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM friendships WHERE friend_id = \$1 AND user_id = \$2`).
		WithArgs(int64(2), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT user_id, friend_id, group_name, created_at FROM friendships WHERE user_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "friend_id", "group_name", "created_at"}).
			AddRow(int64(1), int64(2), "Family", now).
			AddRow(int64(1), int64(3), "Friends", now))

	friendships, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, friendships, 2)
	assert.Equal(t, "Family", friendships[0].GroupName)
}
