package models

import (
	"time"
)

// RoomType is reference data, seeded once at startup.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName     string  `gorm:"column:type_name;size:100" json:"type_name"`
	BasePrice    float64 `gorm:"column:base_price" json:"base_price"`
	MaxOccupancy int     `gorm:"column:max_occupancy" json:"max_occupancy"`
	Description  string  `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
