package controllers

import (
	"net/http"
	"strings"
	"time"

	"hotel-manager/config"
	"hotel-manager/models"
	"hotel-manager/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type guestWithStats struct {
	models.Guest
	TotalBookings int64      `json:"total_bookings"`
	LastVisit     *time.Time `json:"last_visit"`
}

func GetGuests(c *gin.Context) {
	var guests []guestWithStats
	err := config.DB.
		Table("guests").
		Select("guests.*, COUNT(b.id) AS total_bookings, MAX(b.check_in_date) AS last_visit").
		Joins("LEFT JOIN bookings b ON b.guest_id = guests.id").
		Group("guests.id").
		Order("guests.created_at DESC").
		Scan(&guests).Error
	if err != nil {
		logrus.WithError(err).Error("failed to list guests")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, guests)
}

func GetGuestByID(c *gin.Context) {
	var guest models.Guest
	if err := config.DB.First(&guest, "id = ?", c.Param("id")).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Guest not found")
		return
	}

	var bookings []models.Booking
	if err := config.DB.
		Preload("Room").
		Preload("Room.Floor").
		Preload("Room.RoomType").
		Where("guest_id = ?", guest.ID).
		Order("check_in_date DESC").
		Find(&bookings).Error; err != nil {
		logrus.WithError(err).Error("failed to load guest bookings")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guest":    guest,
		"bookings": bookings,
	})
}

type guestPayload struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	GovernmentID string `json:"government_id"`
	IDType       string `json:"id_type"`
}

func CreateGuest(c *gin.Context) {
	var payload guestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if strings.TrimSpace(payload.FirstName) == "" ||
		strings.TrimSpace(payload.LastName) == "" ||
		strings.TrimSpace(payload.Phone) == "" {
		utils.JSONError(c, http.StatusBadRequest, "First name, last name, and phone are required")
		return
	}

	guest := models.Guest{
		FirstName:    strings.TrimSpace(payload.FirstName),
		LastName:     strings.TrimSpace(payload.LastName),
		Email:        strings.TrimSpace(payload.Email),
		Phone:        strings.TrimSpace(payload.Phone),
		Address:      payload.Address,
		GovernmentID: payload.GovernmentID,
		IDType:       payload.IDType,
	}

	if err := config.DB.Create(&guest).Error; err != nil {
		logrus.WithError(err).Error("failed to create guest")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, guest)
}

func UpdateGuest(c *gin.Context) {
	var payload guestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, "id = ?", c.Param("id")).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Guest not found")
		return
	}

	guest.FirstName = strings.TrimSpace(payload.FirstName)
	guest.LastName = strings.TrimSpace(payload.LastName)
	guest.Email = strings.TrimSpace(payload.Email)
	guest.Phone = strings.TrimSpace(payload.Phone)
	guest.Address = payload.Address
	guest.GovernmentID = payload.GovernmentID
	guest.IDType = payload.IDType

	if err := config.DB.Save(&guest).Error; err != nil {
		logrus.WithError(err).Error("failed to update guest")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, guest)
}

func DeleteGuest(c *gin.Context) {
	id := c.Param("id")

	var bookingCount int64
	config.DB.Model(&models.Booking{}).Where("guest_id = ?", id).Count(&bookingCount)
	if bookingCount > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Cannot delete guest with booking history")
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.Guest{})
	if result.Error != nil {
		logrus.WithError(result.Error).Error("failed to delete guest")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Guest not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}

func SearchGuestsByPhone(c *gin.Context) {
	var guests []models.Guest
	if err := config.DB.
		Where("phone LIKE ?", "%"+c.Param("phone")+"%").
		Find(&guests).Error; err != nil {
		logrus.WithError(err).Error("failed to search guests")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, guests)
}
