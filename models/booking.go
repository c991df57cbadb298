package models

import (
	"time"
)

// Booking statuses. Transitions are confirmed -> checked_in -> checked_out,
// with confirmed -> cancelled as the alternate terminal branch. The explicit
// transition endpoints are the only status authority; nothing infers status
// from the wall clock.
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;size:32;uniqueIndex" json:"reference_code"`

	GuestID uint `gorm:"column:guest_id;index" json:"guest_id"`
	RoomID  uint `gorm:"column:room_id;index" json:"room_id"`

	CheckInDate    time.Time `gorm:"column:check_in_date;index" json:"check_in_date"`
	CheckOutDate   time.Time `gorm:"column:check_out_date" json:"check_out_date"`
	NumberOfGuests int       `gorm:"column:number_of_guests" json:"number_of_guests"`

	TotalAmount     float64 `gorm:"column:total_amount" json:"total_amount"`
	Status          string  `gorm:"size:32;default:confirmed;index" json:"status"`
	SpecialRequests string  `gorm:"column:special_requests;type:text" json:"special_requests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Guest        Guest         `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Room         Room          `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:BookingID" json:"transactions,omitempty"`
}

// Active reports whether the booking currently holds its room's dates.
func (b *Booking) Active() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusCheckedIn
}

// Nights counts whole nights in the half-open [check_in, check_out) range.
func (b *Booking) Nights() int {
	n := int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}
