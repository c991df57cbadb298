package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"hotel-manager/models"
	"hotel-manager/repository"

	"github.com/sirupsen/logrus"
)

// BillingService produces read-only views over the booking ledger: the
// per-booking invoice and the revenue/occupancy rollups. It also appends
// manual ledger entries (additional charges and refunds).
type BillingService struct {
	store repository.Store
	log   *logrus.Logger
}

func NewBillingService(store repository.Store, log *logrus.Logger) *BillingService {
	return &BillingService{store: store, log: log}
}

type InvoiceLine struct {
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"` // signed: refunds are negative
	Date        time.Time `json:"date"`
	Notes       string    `json:"notes,omitempty"`
}

type Invoice struct {
	Booking    *models.Booking `json:"booking"`
	Nights     int             `json:"nights"`
	RoomCharge float64         `json:"room_charge"`
	LineItems  []InvoiceLine   `json:"line_items"`
	TotalPaid  float64         `json:"total_paid"`
	GrandTotal float64         `json:"grand_total"`
	BalanceDue float64         `json:"balance_due"`
}

// Invoice aggregates a booking's room charge and its transactions.
// grandTotal = room charge + additional charges - refunds;
// totalPaid sums the ledger the same way (booking payments count in,
// refunds count out), so a fully-paid booking has balanceDue zero.
func (s *BillingService) Invoice(bookingID uint) (*Invoice, error) {
	booking, err := s.store.FindBookingDetailed(bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	txs, err := s.store.TransactionsForBooking(bookingID)
	if err != nil {
		return nil, err
	}

	nights := booking.Nights()
	roomCharge := float64(nights) * booking.Room.PricePerNight

	inv := &Invoice{
		Booking:    booking,
		Nights:     nights,
		RoomCharge: roomCharge,
		GrandTotal: roomCharge,
		LineItems: []InvoiceLine{{
			Description: fmt.Sprintf("Room %s, %d night(s)", booking.Room.RoomNumber, nights),
			Type:        "room_charge",
			Amount:      roomCharge,
			Date:        booking.CheckInDate,
		}},
	}

	for _, t := range txs {
		switch t.TransactionType {
		case models.TxTypeBooking:
			inv.TotalPaid += t.Amount
		case models.TxTypeAdditionalCharge:
			inv.TotalPaid += t.Amount
			inv.GrandTotal += t.Amount
			inv.LineItems = append(inv.LineItems, InvoiceLine{
				Description: "Additional charge",
				Type:        t.TransactionType,
				Amount:      t.Amount,
				Date:        t.TransactionDate,
				Notes:       t.Notes,
			})
		case models.TxTypeRefund:
			inv.TotalPaid -= t.Amount
			inv.GrandTotal -= t.Amount
			inv.LineItems = append(inv.LineItems, InvoiceLine{
				Description: "Refund",
				Type:        t.TransactionType,
				Amount:      -t.Amount,
				Date:        t.TransactionDate,
				Notes:       t.Notes,
			})
		}
	}

	inv.BalanceDue = inv.GrandTotal - inv.TotalPaid
	return inv, nil
}

type AddTransactionInput struct {
	BookingID       uint    `json:"booking_id"`
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	PaymentMethod   string  `json:"payment_method"`
	Notes           string  `json:"notes"`
}

// AddTransaction appends a manual ledger entry. Only additional_charge and
// refund are accepted here: booking-type rows are written exclusively by
// the booking lifecycle.
func (s *BillingService) AddTransaction(in AddTransactionInput) (*models.Transaction, error) {
	if in.BookingID == 0 || in.TransactionType == "" || in.Amount == 0 || strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, fmt.Errorf("%w: booking_id, transaction_type, amount and payment_method are required", ErrValidation)
	}
	if in.TransactionType != models.TxTypeAdditionalCharge && in.TransactionType != models.TxTypeRefund {
		return nil, fmt.Errorf("%w: invalid transaction type, use: additional_charge, refund", ErrValidation)
	}
	if in.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if _, err := s.store.FindBooking(in.BookingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	tx := &models.Transaction{
		BookingID:       in.BookingID,
		TransactionType: in.TransactionType,
		Amount:          in.Amount,
		PaymentMethod:   strings.TrimSpace(in.PaymentMethod),
		PaymentStatus:   models.PaymentStatusCompleted,
		Notes:           in.Notes,
		TransactionDate: time.Now().UTC(),
	}
	if err := s.store.InsertTransaction(tx); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": in.BookingID,
		"type":       in.TransactionType,
		"amount":     in.Amount,
	}).Info("transaction recorded")

	return tx, nil
}

type RevenueRow struct {
	Date             string  `json:"date"`
	TransactionType  string  `json:"transaction_type"`
	PaymentMethod    string  `json:"payment_method"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int     `json:"transaction_count"`
}

type RevenueSummary struct {
	TotalRevenue      float64            `json:"total_revenue"`
	BookingRevenue    float64            `json:"booking_revenue"`
	AdditionalCharges float64            `json:"additional_charges"`
	Refunds           float64            `json:"refunds"`
	ByPaymentMethod   map[string]float64 `json:"by_payment_method"`
}

type RevenueReport struct {
	Transactions []RevenueRow   `json:"transactions"`
	Summary      RevenueSummary `json:"summary"`
}

// reportRange resolves a caller-supplied date range, defaulting to the
// trailing 30 days. The end bound is pushed to the end of its day so
// same-day transactions are included.
func reportRange(startDate, endDate string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
	end := now

	if startDate != "" {
		t, err := parseDate(startDate, "start_date")
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t
	}
	if endDate != "" {
		t, err := parseDate(endDate, "end_date")
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = t.Add(24*time.Hour - time.Second)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date is before start_date", ErrValidation)
	}
	return start, end, nil
}

// RevenueReport groups completed transactions by day, type and payment
// method, with a summary rollup across the range.
func (s *BillingService) RevenueReport(startDate, endDate string) (*RevenueReport, error) {
	start, end, err := reportRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	txs, err := s.store.CompletedTransactionsBetween(start, end)
	if err != nil {
		return nil, err
	}

	type key struct{ date, txType, method string }
	grouped := map[key]*RevenueRow{}
	summary := RevenueSummary{ByPaymentMethod: map[string]float64{}}

	for _, t := range txs {
		k := key{t.TransactionDate.Format(dateLayout), t.TransactionType, t.PaymentMethod}
		row, ok := grouped[k]
		if !ok {
			row = &RevenueRow{Date: k.date, TransactionType: k.txType, PaymentMethod: k.method}
			grouped[k] = row
		}
		row.TotalAmount += t.Amount
		row.TransactionCount++

		summary.TotalRevenue += t.Amount
		switch t.TransactionType {
		case models.TxTypeBooking:
			summary.BookingRevenue += t.Amount
		case models.TxTypeAdditionalCharge:
			summary.AdditionalCharges += t.Amount
		case models.TxTypeRefund:
			summary.Refunds += t.Amount
		}
		summary.ByPaymentMethod[t.PaymentMethod] += t.Amount
	}

	rows := make([]RevenueRow, 0, len(grouped))
	for _, row := range grouped {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].TransactionType < rows[j].TransactionType
	})

	return &RevenueReport{Transactions: rows, Summary: summary}, nil
}

type OccupancyRow struct {
	Date           string `json:"date"`
	BookingsCount  int    `json:"bookings_count"`
	TotalGuests    int    `json:"total_guests"`
	ActiveStays    int    `json:"active_stays"`
	CompletedStays int    `json:"completed_stays"`
}

// OccupancyReport groups bookings by check-in date over the range.
func (s *BillingService) OccupancyReport(startDate, endDate string) ([]OccupancyRow, error) {
	start, end, err := reportRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	bookings, err := s.store.BookingsCheckInBetween(start, end)
	if err != nil {
		return nil, err
	}

	grouped := map[string]*OccupancyRow{}
	for _, b := range bookings {
		date := b.CheckInDate.Format(dateLayout)
		row, ok := grouped[date]
		if !ok {
			row = &OccupancyRow{Date: date}
			grouped[date] = row
		}
		row.BookingsCount++
		row.TotalGuests += b.NumberOfGuests
		switch b.Status {
		case models.BookingStatusCheckedIn:
			row.ActiveStays++
		case models.BookingStatusCheckedOut:
			row.CompletedStays++
		}
	}

	rows := make([]OccupancyRow, 0, len(grouped))
	for _, row := range grouped {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows, nil
}
