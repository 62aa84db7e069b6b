//go:build unit

package room_test

import (
	"testing"
	"time"

	"oceanview/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := room.NewRoom("204", room.TypeDouble, 2, 15000)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "204", actual.Number())
		assert.Equal(t, room.TypeDouble, actual.RoomType())
		assert.Equal(t, 2, actual.Capacity())
		assert.Equal(t, int64(15000), actual.RateCentsPerNight())
		assert.Equal(t, room.StatusAvailable, actual.Status())
	})

	t.Run("number is trimmed", func(t *testing.T) {
		actual, err := room.NewRoom("  305 ", room.TypeSuite, 4, 40000)
		require.NoError(t, err)
		assert.Equal(t, "305", actual.Number())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			number   string
			roomType room.Type
			capacity int
			rate     int64
			errIs    error
		}{
			{name: "empty number", number: "", roomType: room.TypeSingle, capacity: 1, rate: 10000, errIs: room.ErrEmptyRoomNumber},
			{name: "whitespace number", number: "   ", roomType: room.TypeSingle, capacity: 1, rate: 10000, errIs: room.ErrEmptyRoomNumber},
			{name: "unknown type", number: "101", roomType: room.Type("PENTHOUSE"), capacity: 1, rate: 10000, errIs: room.ErrInvalidType},
			{name: "zero capacity", number: "101", roomType: room.TypeSingle, capacity: 0, rate: 10000, errIs: room.ErrInvalidCapacity},
			{name: "negative capacity", number: "101", roomType: room.TypeSingle, capacity: -1, rate: 10000, errIs: room.ErrInvalidCapacity},
			{name: "negative rate", number: "101", roomType: room.TypeSingle, capacity: 1, rate: -1, errIs: room.ErrNegativeRate},
			{name: "zero rate is allowed", number: "101", roomType: room.TypeSingle, capacity: 1, rate: 0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := room.NewRoom(tc.number, tc.roomType, tc.capacity, tc.rate)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestRoom_WithAttributes(t *testing.T) {
	original, err := room.NewRoom("101", room.TypeSingle, 1, 10000)
	require.NoError(t, err)

	updated, err := original.WithAttributes(room.TypeDeluxe, 3, 25000)
	require.NoError(t, err)

	assert.Equal(t, original.ID(), updated.ID())
	assert.Equal(t, original.Number(), updated.Number())
	assert.Equal(t, room.TypeDeluxe, updated.RoomType())
	assert.Equal(t, 3, updated.Capacity())
	assert.Equal(t, int64(25000), updated.RateCentsPerNight())

	// original is untouched
	assert.Equal(t, room.TypeSingle, original.RoomType())

	_, err = original.WithAttributes(room.Type("bad"), 1, 10000)
	assert.ErrorIs(t, err, room.ErrInvalidType)
}

func TestRoom_IsBookable(t *testing.T) {
	cases := []struct {
		status   room.Status
		bookable bool
	}{
		{room.StatusAvailable, true},
		{room.StatusReserved, true},
		{room.StatusOccupied, true},
		{room.StatusMaintenance, false},
	}
	for _, tc := range cases {
		t.Run(tc.status.String(), func(t *testing.T) {
			r := room.ReconstructRoom(uuid.New(), "101", room.TypeDouble, 2, 15000, tc.status, time.Time{}, time.Time{})
			assert.Equal(t, tc.bookable, r.IsBookable())
		})
	}
}
