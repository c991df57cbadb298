package models

import (
	"time"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	FirstName    string `gorm:"column:first_name;size:100" json:"first_name"`
	LastName     string `gorm:"column:last_name;size:100" json:"last_name"`
	Email        string `gorm:"size:150" json:"email"`
	Phone        string `gorm:"size:50;index" json:"phone"`
	Address      string `gorm:"type:text" json:"address"`
	GovernmentID string `gorm:"column:government_id;size:100" json:"government_id"`
	IDType       string `gorm:"column:id_type;size:50" json:"id_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
