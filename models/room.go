package models

import (
	"time"
)

// Room statuses. Status is derived from the latest active booking and is
// written by the booking lifecycle service; "maintenance" is set by admins
// through the room update endpoint.
const (
	RoomStatusAvailable   = "available"
	RoomStatusBooked      = "booked"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber    string  `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"room_number"`
	FloorID       uint    `gorm:"column:floor_id;index" json:"floor_id"`
	RoomTypeID    uint    `gorm:"column:room_type_id;index" json:"room_type_id"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	Status        string  `gorm:"size:32;default:available" json:"status"`
	Description   string  `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Floor    Floor    `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}

func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusBooked, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}
