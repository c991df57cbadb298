package controllers

import (
	"net/http"
	"strconv"

	"hotel-manager/config"
	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BookingController struct {
	svc *services.BookingService
	log *logrus.Logger
}

func NewBookingController(svc *services.BookingService, log *logrus.Logger) *BookingController {
	return &BookingController{svc: svc, log: log}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.
		Preload("Guest").
		Preload("Room").
		Preload("Room.Floor").
		Preload("Room.RoomType").
		Preload("Transactions").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		bc.log.WithError(err).Error("failed to list bookings")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingsByStatus(c *gin.Context) {
	status := c.Param("status")
	switch status {
	case models.BookingStatusConfirmed, models.BookingStatusCheckedIn,
		models.BookingStatusCheckedOut, models.BookingStatusCancelled:
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking status")
		return
	}

	var bookings []models.Booking
	if err := config.DB.
		Preload("Guest").
		Preload("Room").
		Where("status = ?", status).
		Order("check_in_date").
		Find(&bookings).Error; err != nil {
		bc.log.WithError(err).Error("failed to list bookings by status")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := bc.svc.GetBooking(id)
	if err != nil {
		utils.ServiceError(c, bc.log, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := bc.svc.CreateBooking(input)
	if err != nil {
		utils.ServiceError(c, bc.log, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (bc *BookingController) CheckIn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := bc.svc.CheckIn(id)
	if err != nil {
		utils.ServiceError(c, bc.log, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type checkoutPayload struct {
	AdditionalCharges float64 `json:"additional_charges"`
	PaymentMethod     string  `json:"payment_method"`
}

func (bc *BookingController) CheckOut(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload checkoutPayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
	}

	booking, totalPaid, err := bc.svc.CheckOut(id, payload.AdditionalCharges, payload.PaymentMethod)
	if err != nil {
		utils.ServiceError(c, bc.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking":            booking,
		"additional_charges": payload.AdditionalCharges,
		"total_paid":         totalPaid,
	})
}

func (bc *BookingController) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := bc.svc.Cancel(id)
	if err != nil {
		utils.ServiceError(c, bc.log, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := bc.svc.Delete(id); err != nil {
		utils.ServiceError(c, bc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
