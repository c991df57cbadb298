package models

import (
	"time"
)

// Transaction types. The ledger is append-only: refunds are recorded as
// their own rows, never by mutating earlier charges.
const (
	TxTypeBooking          = "booking"
	TxTypeAdditionalCharge = "additional_charge"
	TxTypeRefund           = "refund"
)

const (
	PaymentStatusCompleted = "completed"
	PaymentStatusPending   = "pending"
)

type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID       uint      `gorm:"column:booking_id;index" json:"booking_id"`
	TransactionType string    `gorm:"column:transaction_type;size:32" json:"transaction_type"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `gorm:"column:payment_method;size:50" json:"payment_method"`
	PaymentStatus   string    `gorm:"column:payment_status;size:32;default:completed" json:"payment_status"`
	Notes           string    `gorm:"type:text" json:"notes"`
	TransactionDate time.Time `gorm:"column:transaction_date;autoCreateTime" json:"transaction_date"`
}

func ValidTransactionType(t string) bool {
	switch t {
	case TxTypeBooking, TxTypeAdditionalCharge, TxTypeRefund:
		return true
	}
	return false
}
