package services

import "errors"

// Failure classes surfaced to the controllers, which map them onto HTTP
// statuses. Wrap with fmt.Errorf("%w: detail") to attach a message.
var (
	ErrValidation      = errors.New("validation")
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrGuestNotFound   = errors.New("guest_not_found")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrRoomUnavailable = errors.New("room_not_available")
	ErrDateConflict    = errors.New("room_already_booked")
	ErrInvalidState    = errors.New("invalid_state")
)
