package friendships

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/pkg/logger"
)

type memoryRepo struct {
	edges map[[2]int64]string
	err   error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{edges: make(map[[2]int64]string)}
}

func (m *memoryRepo) CreateIfAbsent(_ context.Context, userID, friendID int64, groupName string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	key := [2]int64{userID, friendID}
	if _, ok := m.edges[key]; ok {
		return false, nil
	}
	m.edges[key] = groupName
	return true, nil
}

func (m *memoryRepo) DeletePair(_ context.Context, a, b int64) (int64, error) {
	var removed int64
	for _, key := range [][2]int64{{a, b}, {b, a}} {
		if _, ok := m.edges[key]; ok {
			delete(m.edges, key)
			removed++
		}
	}
	return removed, nil
}

func (m *memoryRepo) Exists(_ context.Context, userID, friendID int64) (bool, error) {
	_, ok := m.edges[[2]int64{userID, friendID}]
	return ok, nil
}

func (m *memoryRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Friendship, error) {
	var out []*domain.Friendship
	for key, group := range m.edges {
		if key[0] == userID {
			out = append(out, &domain.Friendship{UserID: key[0], FriendID: key[1], GroupName: group})
		}
	}
	return out, nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

func TestMakeAndEndAreSymmetric(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, inlineTx{}, logger.NewNop())
	ctx := context.Background()

	created, err := svc.Make(ctx, 1, 2, "Friends")
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	for _, pair := range [][2]int64{{1, 2}, {2, 1}} {
		ok, err := svc.Exists(ctx, pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, ok, "edge %d->%d", pair[0], pair[1])
	}

	removed, err := svc.End(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	for _, pair := range [][2]int64{{1, 2}, {2, 1}} {
		ok, err := svc.Exists(ctx, pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestMakeIsIdempotentAndFirstGroupWins(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, inlineTx{}, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Make(ctx, 1, 2, "Family")
	require.NoError(t, err)

	created, err := svc.Make(ctx, 2, 1, "Work")
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, "Family", repo.edges[[2]int64{1, 2}])
	assert.Equal(t, "Family", repo.edges[[2]int64{2, 1}])
}

func TestMakeRepairsMissingReverseEdge(t *testing.T) {
	repo := newMemoryRepo()
	repo.edges[[2]int64{1, 2}] = "Friends"
	svc := NewService(repo, inlineTx{}, logger.NewNop())

	created, err := svc.Make(context.Background(), 1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, domain.DefaultFriendshipGroup, repo.edges[[2]int64{2, 1}])
}

func TestMakeRejectsSelf(t *testing.T) {
	svc := NewService(newMemoryRepo(), inlineTx{}, logger.NewNop())

	_, err := svc.Make(context.Background(), 3, 3, "Friends")
	assert.ErrorIs(t, err, ErrSelfFriendship)
}

func TestMakeWrapsRepositoryErrors(t *testing.T) {
	repo := newMemoryRepo()
	repo.err = errors.New("db down")
	svc := NewService(repo, inlineTx{}, logger.NewNop())

	_, err := svc.Make(context.Background(), 1, 2, "Friends")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListFriendsGroupsByLabel(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, inlineTx{}, logger.NewNop())
	ctx := context.Background()

	_, _ = svc.Make(ctx, 1, 2, "Family")
	_, _ = svc.Make(ctx, 1, 3, "Family")
	_, _ = svc.Make(ctx, 1, 4, "Work")

	resp, err := svc.ListFriends(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Groups, 2)
}
