package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityReserve(t *testing.T) {
	tests := []struct {
		name       string
		capacity   Capacity
		guests     int
		wantBooked int
		wantErr    error
	}{
		{name: "fits", capacity: Capacity{Total: 10}, guests: 6, wantBooked: 6},
		{name: "exactly fills", capacity: Capacity{Total: 10, Booked: 6}, guests: 4, wantBooked: 10},
		{name: "too many", capacity: Capacity{Total: 10, Booked: 6}, guests: 5, wantBooked: 6, wantErr: ErrInsufficientCapacity},
		{name: "zero guests", capacity: Capacity{Total: 10}, guests: 0, wantBooked: 0, wantErr: ErrInvalidGuestCount},
		{name: "negative guests", capacity: Capacity{Total: 10}, guests: -2, wantBooked: 0, wantErr: ErrInvalidGuestCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.capacity.Reserve(tt.guests)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantBooked, got.Booked)
		})
	}
}

func TestCapacityReleaseIsFloored(t *testing.T) {
	c := Capacity{Total: 10, Booked: 3}

	assert.Equal(t, 0, c.Release(5).Booked)
	assert.Equal(t, 1, c.Release(2).Booked)
	assert.Equal(t, 3, c.Release(-1).Booked)
}

func TestCapacityScenario(t *testing.T) {
	c := Capacity{Total: 10}

	c, err := c.Reserve(6)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Available())

	c, err = c.Reserve(5)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
	assert.Equal(t, 6, c.Booked)

	c, err = c.Reserve(4)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Available())

	c = c.Release(4)
	assert.Equal(t, 4, c.Available())
}

func TestCapacityStaysWithinBounds(t *testing.T) {
	const total = 12
	rng := rand.New(rand.NewSource(42))
	c := Capacity{Total: total}

	for i := 0; i < 1000; i++ {
		n := rng.Intn(6)
		if rng.Intn(2) == 0 {
			c, _ = c.Reserve(n)
		} else {
			c = c.Release(n)
		}
		require.GreaterOrEqual(t, c.Booked, 0)
		require.LessOrEqual(t, c.Booked, total)
		require.Equal(t, total-c.Booked, c.Available())
	}
}

func TestRoomReserveAndRelease(t *testing.T) {
	room := Room{PersonLimit: 4, CurrentAvailability: 4, Status: RoomAvailable}

	_, err := room.Reserve(5)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)

	room, err = room.Reserve(4)
	require.NoError(t, err)
	assert.Equal(t, 0, room.CurrentAvailability)
	assert.Equal(t, RoomOccupied, room.Status)

	_, err = room.Reserve(1)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)

	room = room.Release(10)
	assert.Equal(t, 4, room.CurrentAvailability)
	assert.Equal(t, RoomAvailable, room.Status)
}

func TestRoomMaintenanceIsNotBookable(t *testing.T) {
	room := Room{PersonLimit: 2, CurrentAvailability: 2, Status: RoomMaintenance}
	assert.False(t, room.IsBookable())

	room = room.Release(1)
	assert.Equal(t, RoomMaintenance, room.Status)
}
