package services

import (
	"testing"
	"time"

	"hotel-manager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapsHalfOpen(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 1, 4, 1, 4, true},
		{"contained", 1, 10, 3, 5, true},
		{"partial front", 1, 4, 3, 6, true},
		{"partial back", 3, 6, 1, 4, true},
		{"touching at checkout", 1, 4, 4, 6, false},
		{"touching at checkin", 4, 6, 1, 4, false},
		{"disjoint", 1, 3, 5, 8, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(day(tc.aStart), day(tc.aEnd), day(tc.bStart), day(tc.bEnd))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsRoomAvailable(t *testing.T) {
	store := newFakeStore()
	store.rooms[1] = &models.Room{ID: 1, RoomNumber: "101", PricePerNight: 100, Status: models.RoomStatusAvailable}
	store.bookings[1] = &models.Booking{
		ID:           1,
		RoomID:       1,
		CheckInDate:  day(10),
		CheckOutDate: day(13),
		Status:       models.BookingStatusConfirmed,
	}

	ok, err := IsRoomAvailable(store, 1, day(11), day(12))
	require.NoError(t, err)
	assert.False(t, ok, "overlap with an active booking")

	ok, err = IsRoomAvailable(store, 1, day(13), day(15))
	require.NoError(t, err)
	assert.True(t, ok, "check-in on the active booking's checkout day")

	// cancelled bookings do not block the room
	store.bookings[1].Status = models.BookingStatusCancelled
	ok, err = IsRoomAvailable(store, 1, day(11), day(12))
	require.NoError(t, err)
	assert.True(t, ok)

	// a room out of rotation never takes direct bookings
	store.rooms[1].Status = models.RoomStatusMaintenance
	ok, err = IsRoomAvailable(store, 1, day(20), day(22))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsRoomAvailableUnknownRoom(t *testing.T) {
	store := newFakeStore()
	_, err := IsRoomAvailable(store, 42, day(1), day(2))
	assert.Error(t, err)
}
