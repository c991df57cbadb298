package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-manager/models"
	"hotel-manager/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// BookingService owns the booking state machine. It is the only writer of
// room status: every transition updates the booking row and the room row in
// lockstep, inside one database transaction.
type BookingService struct {
	store         repository.Store
	breakfastRate float64
	log           *logrus.Logger
}

func NewBookingService(store repository.Store, breakfastRate float64, log *logrus.Logger) *BookingService {
	return &BookingService{store: store, breakfastRate: breakfastRate, log: log}
}

type CreateBookingInput struct {
	GuestID          uint   `json:"guest_id"`
	RoomID           uint   `json:"room_id"`
	CheckInDate      string `json:"check_in_date"`
	CheckOutDate     string `json:"check_out_date"`
	NumberOfGuests   int    `json:"number_of_guests"`
	SpecialRequests  string `json:"special_requests"`
	PaymentMethod    string `json:"payment_method"`
	IncludeBreakfast bool   `json:"include_breakfast"`
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s, expected YYYY-MM-DD", ErrValidation, field)
	}
	return t, nil
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateBooking validates the request, checks availability and applies all
// four effects atomically: booking row, room status, booking-type
// transaction and, when breakfast is requested, the surcharge transaction.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if in.GuestID == 0 || in.RoomID == 0 || in.CheckInDate == "" || in.CheckOutDate == "" {
		return nil, fmt.Errorf("%w: guest_id, room_id, check_in_date and check_out_date are required", ErrValidation)
	}
	if in.NumberOfGuests < 1 {
		return nil, fmt.Errorf("%w: number_of_guests must be at least 1", ErrValidation)
	}

	checkIn, err := parseDate(in.CheckInDate, "check_in_date")
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate(in.CheckOutDate, "check_out_date")
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check_out_date must be after check_in_date", ErrValidation)
	}

	paymentMethod := strings.TrimSpace(in.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	var bookingID uint

	txErr := s.store.WithinTransaction(func(tx repository.Store) error {
		// Lock the room row first: the overlap check and the insert below
		// must be serialized per room or two requests can both pass the
		// check and double-book.
		room, err := tx.FindRoomForUpdate(in.RoomID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.Status != models.RoomStatusAvailable {
			return fmt.Errorf("%w: room %s is %s", ErrRoomUnavailable, room.RoomNumber, room.Status)
		}

		if _, err := tx.FindGuest(in.GuestID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrGuestNotFound
			}
			return err
		}

		roomType, err := tx.FindRoomType(room.RoomTypeID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if roomType != nil && in.NumberOfGuests > roomType.MaxOccupancy {
			return fmt.Errorf("%w: %s rooms take at most %d guests", ErrValidation, roomType.TypeName, roomType.MaxOccupancy)
		}

		overlapping, err := tx.CountOverlappingBookings(in.RoomID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return fmt.Errorf("%w: room is already booked for these dates", ErrDateConflict)
		}

		nights := int(checkOut.Sub(checkIn).Hours() / 24)
		roomCharge := float64(nights) * room.PricePerNight

		var breakfastCharge float64
		if in.IncludeBreakfast {
			breakfastCharge = s.breakfastRate * float64(in.NumberOfGuests) * float64(nights)
		}

		booking := models.Booking{
			ReferenceCode:   newReferenceCode(),
			GuestID:         in.GuestID,
			RoomID:          in.RoomID,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumberOfGuests:  in.NumberOfGuests,
			TotalAmount:     roomCharge + breakfastCharge,
			Status:          models.BookingStatusConfirmed,
			SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		}
		if err := tx.InsertBooking(&booking); err != nil {
			return err
		}
		bookingID = booking.ID

		if err := tx.UpdateRoomStatus(in.RoomID, models.RoomStatusBooked); err != nil {
			return err
		}

		if err := tx.InsertTransaction(&models.Transaction{
			BookingID:       booking.ID,
			TransactionType: models.TxTypeBooking,
			Amount:          roomCharge,
			PaymentMethod:   paymentMethod,
			PaymentStatus:   models.PaymentStatusCompleted,
			TransactionDate: time.Now().UTC(),
		}); err != nil {
			return err
		}

		if breakfastCharge > 0 {
			if err := tx.InsertTransaction(&models.Transaction{
				BookingID:       booking.ID,
				TransactionType: models.TxTypeAdditionalCharge,
				Amount:          breakfastCharge,
				PaymentMethod:   paymentMethod,
				PaymentStatus:   models.PaymentStatusCompleted,
				Notes:           "Breakfast surcharge",
				TransactionDate: time.Now().UTC(),
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": bookingID,
		"room_id":    in.RoomID,
		"guest_id":   in.GuestID,
	}).Info("booking created")

	return s.store.FindBookingDetailed(bookingID)
}

// CheckIn moves a confirmed booking to checked_in and marks the room
// occupied.
func (s *BookingService) CheckIn(bookingID uint) (*models.Booking, error) {
	err := s.store.WithinTransaction(func(tx repository.Store) error {
		booking, err := tx.FindBookingForUpdate(bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status != models.BookingStatusConfirmed {
			return fmt.Errorf("%w: booking is not in confirmed status", ErrInvalidState)
		}

		if err := tx.UpdateBookingStatus(bookingID, models.BookingStatusCheckedIn); err != nil {
			return err
		}
		return tx.UpdateRoomStatus(booking.RoomID, models.RoomStatusOccupied)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("booking_id", bookingID).Info("guest checked in")
	return s.store.FindBookingDetailed(bookingID)
}

// CheckOut moves a checked-in booking to checked_out, frees the room and
// records any additional charges accrued during the stay. The returned
// total is the booking amount plus those charges.
func (s *BookingService) CheckOut(bookingID uint, additionalCharges float64, paymentMethod string) (*models.Booking, float64, error) {
	if additionalCharges < 0 {
		return nil, 0, fmt.Errorf("%w: additional_charges cannot be negative", ErrValidation)
	}
	if paymentMethod = strings.TrimSpace(paymentMethod); paymentMethod == "" {
		paymentMethod = "cash"
	}

	var totalPaid float64

	err := s.store.WithinTransaction(func(tx repository.Store) error {
		booking, err := tx.FindBookingForUpdate(bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status != models.BookingStatusCheckedIn {
			return fmt.Errorf("%w: guest is not checked in", ErrInvalidState)
		}

		if err := tx.UpdateBookingStatus(bookingID, models.BookingStatusCheckedOut); err != nil {
			return err
		}
		if err := tx.UpdateRoomStatus(booking.RoomID, models.RoomStatusAvailable); err != nil {
			return err
		}

		if additionalCharges > 0 {
			if err := tx.InsertTransaction(&models.Transaction{
				BookingID:       bookingID,
				TransactionType: models.TxTypeAdditionalCharge,
				Amount:          additionalCharges,
				PaymentMethod:   paymentMethod,
				PaymentStatus:   models.PaymentStatusCompleted,
				Notes:           "Additional charges during stay",
				TransactionDate: time.Now().UTC(),
			}); err != nil {
				return err
			}
		}

		totalPaid = booking.TotalAmount + additionalCharges
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	s.log.WithField("booking_id", bookingID).Info("guest checked out")

	booking, err := s.store.FindBookingDetailed(bookingID)
	if err != nil {
		return nil, 0, err
	}
	return booking, totalPaid, nil
}

// Cancel moves a confirmed booking to cancelled and frees the room.
func (s *BookingService) Cancel(bookingID uint) (*models.Booking, error) {
	err := s.store.WithinTransaction(func(tx repository.Store) error {
		booking, err := tx.FindBookingForUpdate(bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status != models.BookingStatusConfirmed {
			return fmt.Errorf("%w: only confirmed bookings can be cancelled", ErrInvalidState)
		}

		if err := tx.UpdateBookingStatus(bookingID, models.BookingStatusCancelled); err != nil {
			return err
		}
		return tx.UpdateRoomStatus(booking.RoomID, models.RoomStatusAvailable)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("booking_id", bookingID).Info("booking cancelled")
	return s.store.FindBookingDetailed(bookingID)
}

// Delete removes a cancelled booking and its ledger rows. Bookings in any
// other state are kept for the financial record.
func (s *BookingService) Delete(bookingID uint) error {
	return s.store.WithinTransaction(func(tx repository.Store) error {
		booking, err := tx.FindBookingForUpdate(bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status != models.BookingStatusCancelled {
			return fmt.Errorf("%w: only cancelled bookings can be deleted", ErrInvalidState)
		}
		return tx.DeleteBooking(bookingID)
	})
}

// GetBooking returns a booking with its guest/room display fields.
func (s *BookingService) GetBooking(bookingID uint) (*models.Booking, error) {
	booking, err := s.store.FindBookingDetailed(bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}
