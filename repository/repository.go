// Package repository defines the data-access capability set the booking
// lifecycle and billing services depend on, so they can be unit tested
// against an in-memory fake instead of a live database.
package repository

import (
	"errors"
	"time"

	"hotel-manager/models"
)

// ErrNotFound is returned by all Find* methods when no row matches.
var ErrNotFound = errors.New("record not found")

// Store is the persistence surface of the booking and billing domain.
//
// WithinTransaction runs fn against a Store whose writes are atomic: either
// every operation in fn is applied, or none are. Implementations must make
// FindRoomForUpdate and FindBookingForUpdate lock the row for the duration
// of the enclosing transaction, so that the availability check and the
// subsequent insert are serialized per room.
type Store interface {
	WithinTransaction(fn func(Store) error) error

	FindRoom(id uint) (*models.Room, error)
	FindRoomForUpdate(id uint) (*models.Room, error)
	FindRoomType(id uint) (*models.RoomType, error)
	FindGuest(id uint) (*models.Guest, error)

	FindBooking(id uint) (*models.Booking, error)
	FindBookingForUpdate(id uint) (*models.Booking, error)
	// FindBookingDetailed loads the booking together with its guest, room,
	// floor and room type for invoice/detail views.
	FindBookingDetailed(id uint) (*models.Booking, error)

	// CountOverlappingBookings counts bookings on the room with status
	// confirmed or checked_in whose [check_in, check_out) range intersects
	// the given half-open range.
	CountOverlappingBookings(roomID uint, checkIn, checkOut time.Time) (int64, error)

	InsertBooking(b *models.Booking) error
	UpdateBookingStatus(id uint, status string) error
	DeleteBooking(id uint) error

	UpdateRoomStatus(id uint, status string) error

	InsertTransaction(t *models.Transaction) error
	TransactionsForBooking(bookingID uint) ([]models.Transaction, error)
	// CompletedTransactionsBetween returns completed-payment transactions
	// with a transaction date inside [start, end].
	CompletedTransactionsBetween(start, end time.Time) ([]models.Transaction, error)
	// BookingsCheckInBetween returns bookings whose check-in date falls
	// inside [start, end].
	BookingsCheckInBetween(start, end time.Time) ([]models.Booking, error)
}
