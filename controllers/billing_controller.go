package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotel-manager/config"
	"hotel-manager/services"
	"hotel-manager/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BillingController struct {
	svc *services.BillingService
	log *logrus.Logger
}

func NewBillingController(svc *services.BillingService, log *logrus.Logger) *BillingController {
	return &BillingController{svc: svc, log: log}
}

type transactionRow struct {
	ID              uint      `json:"id"`
	BookingID       uint      `json:"booking_id"`
	TransactionType string    `json:"transaction_type"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"payment_method"`
	PaymentStatus   string    `json:"payment_status"`
	Notes           string    `json:"notes"`
	TransactionDate time.Time `json:"transaction_date"`
	GuestID         uint      `json:"guest_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	RoomNumber      string    `json:"room_number"`
}

func (bl *BillingController) GetTransactions(c *gin.Context) {
	var rows []transactionRow
	err := config.DB.
		Table("transactions").
		Select("transactions.*, b.guest_id, g.first_name, g.last_name, r.room_number").
		Joins("LEFT JOIN bookings b ON transactions.booking_id = b.id").
		Joins("LEFT JOIN guests g ON b.guest_id = g.id").
		Joins("LEFT JOIN rooms r ON b.room_id = r.id").
		Order("transactions.transaction_date DESC").
		Scan(&rows).Error
	if err != nil {
		bl.log.WithError(err).Error("failed to list transactions")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (bl *BillingController) GetInvoice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("bookingId"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	invoice, err := bl.svc.Invoice(uint(id))
	if err != nil {
		utils.ServiceError(c, bl.log, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (bl *BillingController) AddTransaction(c *gin.Context) {
	var input services.AddTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	tx, err := bl.svc.AddTransaction(input)
	if err != nil {
		utils.ServiceError(c, bl.log, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (bl *BillingController) RevenueReport(c *gin.Context) {
	report, err := bl.svc.RevenueReport(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		utils.ServiceError(c, bl.log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (bl *BillingController) OccupancyReport(c *gin.Context) {
	report, err := bl.svc.OccupancyReport(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		utils.ServiceError(c, bl.log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
