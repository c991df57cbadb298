package repository

import (
	"errors"
	"testing"
	"time"

	"hotel-manager/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewGormStore(gdb), mock
}

func TestCountOverlappingBookings(t *testing.T) {
	store, mock := newMockStore(t)

	checkIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WithArgs(1, models.BookingStatusConfirmed, models.BookingStatusCheckedIn, checkOut, checkIn).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := store.CountOverlappingBookings(1, checkIn, checkOut)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRoomForUpdateLocksRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `rooms` WHERE .+ FOR UPDATE").
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "status", "price_per_night"}).
			AddRow(5, "301", models.RoomStatusAvailable, 150.0))

	room, err := store.FindRoomForUpdate(5)
	require.NoError(t, err)
	assert.Equal(t, "301", room.RoomNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRoomForUpdateNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.FindRoomForUpdate(99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoomStatusMissingRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE `rooms` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdateRoomStatus(42, models.RoomStatusBooked)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBookingStatus(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE `bookings` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateBookingStatus(3, models.BookingStatusCheckedIn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBookingRemovesLedgerRows(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM `transactions` WHERE booking_id = \\?").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `bookings`").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.DeleteBooking(7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBookingMissingRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM `transactions`").
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `bookings`").
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.DeleteBooking(8)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransactionCommits(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `rooms` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.WithinTransaction(func(tx Store) error {
		return tx.UpdateRoomStatus(1, models.RoomStatusOccupied)
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("write failed")
	err := store.WithinTransaction(func(Store) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}
