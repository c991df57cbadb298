package models

import (
	"time"
)

type Floor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FloorNumber int    `gorm:"column:floor_number;uniqueIndex" json:"floor_number"`
	FloorName   string `gorm:"column:floor_name;size:100" json:"floor_name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
