package models

import (
	"time"
)

type Manager struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:150" json:"username"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	FullName string `gorm:"column:full_name;size:255" json:"full_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
