package services

import (
	"time"

	"hotel-manager/models"
	"hotel-manager/repository"
)

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. A checkout on day N does not conflict with a
// check-in on day N.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsRoomAvailable reports whether the room can take a new direct booking
// for [checkIn, checkOut): its own status must be available and no
// confirmed or checked-in booking may overlap the range.
//
// The result is advisory unless the call runs inside the same transaction
// as the insert, with the room row locked.
func IsRoomAvailable(store repository.Store, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	room, err := store.FindRoom(roomID)
	if err != nil {
		return false, err
	}
	if room.Status != models.RoomStatusAvailable {
		return false, nil
	}

	count, err := store.CountOverlappingBookings(roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
