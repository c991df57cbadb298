package repository

import (
	"errors"
	"time"

	"hotel-manager/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the production Store backed by *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) WithinTransaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) FindRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.Preload("Floor").Preload("RoomType").First(&room, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &room, nil
}

func (s *GormStore) FindRoomForUpdate(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &room, nil
}

func (s *GormStore) FindRoomType(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.db.First(&rt, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &rt, nil
}

func (s *GormStore) FindGuest(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &guest, nil
}

func (s *GormStore) FindBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &booking, nil
}

func (s *GormStore) FindBookingForUpdate(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &booking, nil
}

func (s *GormStore) FindBookingDetailed(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.
		Preload("Guest").
		Preload("Room").
		Preload("Room.Floor").
		Preload("Room.RoomType").
		First(&booking, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &booking, nil
}

func (s *GormStore) CountOverlappingBookings(roomID uint, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&count).Error
	return count, err
}

func (s *GormStore) InsertBooking(b *models.Booking) error {
	return s.db.Create(b).Error
}

func (s *GormStore) UpdateBookingStatus(id uint, status string) error {
	res := s.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteBooking(id uint) error {
	// The booking owns its ledger rows; remove them with it.
	if err := s.db.Where("booking_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
		return err
	}
	res := s.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) UpdateRoomStatus(id uint, status string) error {
	res := s.db.Model(&models.Room{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) InsertTransaction(t *models.Transaction) error {
	return s.db.Create(t).Error
}

func (s *GormStore) TransactionsForBooking(bookingID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.
		Where("booking_id = ?", bookingID).
		Order("transaction_date ASC").
		Find(&txs).Error
	return txs, err
}

func (s *GormStore) CompletedTransactionsBetween(start, end time.Time) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.
		Where("payment_status = ?", models.PaymentStatusCompleted).
		Where("transaction_date >= ? AND transaction_date <= ?", start, end).
		Order("transaction_date DESC").
		Find(&txs).Error
	return txs, err
}

func (s *GormStore) BookingsCheckInBetween(start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Where("check_in_date >= ? AND check_in_date <= ?", start, end).
		Order("check_in_date DESC").
		Find(&bookings).Error
	return bookings, err
}
