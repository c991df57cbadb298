package controllers

import (
	"net/http"
	"strings"

	"hotel-manager/config"
	"hotel-manager/models"
	"hotel-manager/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.
		Preload("Floor").
		Preload("RoomType").
		Order("floor_id, room_number").
		Find(&rooms).Error; err != nil {
		logrus.WithError(err).Error("failed to list rooms")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func GetRoomByID(c *gin.Context) {
	var room models.Room
	if err := config.DB.
		Preload("Floor").
		Preload("RoomType").
		First(&room, "id = ?", c.Param("id")).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	c.JSON(http.StatusOK, room)
}

func GetRoomsByStatus(c *gin.Context) {
	status := c.Param("status")
	if !models.ValidRoomStatus(status) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room status")
		return
	}

	var rooms []models.Room
	if err := config.DB.
		Preload("Floor").
		Preload("RoomType").
		Where("status = ?", status).
		Order("floor_id, room_number").
		Find(&rooms).Error; err != nil {
		logrus.WithError(err).Error("failed to list rooms by status")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func GetRoomsByFloor(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.
		Preload("RoomType").
		Where("floor_id = ?", c.Param("floorId")).
		Order("room_number").
		Find(&rooms).Error; err != nil {
		logrus.WithError(err).Error("failed to list rooms by floor")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type roomPayload struct {
	RoomNumber    string   `json:"room_number"`
	FloorID       uint     `json:"floor_id"`
	RoomTypeID    uint     `json:"room_type_id"`
	PricePerNight *float64 `json:"price_per_night"`
	Description   string   `json:"description"`
}

func CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payload.RoomNumber = strings.TrimSpace(payload.RoomNumber)
	if payload.RoomNumber == "" || payload.FloorID == 0 || payload.RoomTypeID == 0 || payload.PricePerNight == nil {
		utils.JSONError(c, http.StatusBadRequest, "Room number, floor, room type, and price are required")
		return
	}

	var floor models.Floor
	if err := config.DB.First(&floor, payload.FloorID).Error; err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid floor")
		return
	}
	var roomType models.RoomType
	if err := config.DB.First(&roomType, payload.RoomTypeID).Error; err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room type")
		return
	}

	room := models.Room{
		RoomNumber:    payload.RoomNumber,
		FloorID:       payload.FloorID,
		RoomTypeID:    payload.RoomTypeID,
		PricePerNight: *payload.PricePerNight,
		Status:        models.RoomStatusAvailable,
		Description:   payload.Description,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		if isDuplicateKeyErr(err) {
			utils.JSONError(c, http.StatusConflict, "Room number already exists")
			return
		}
		logrus.WithError(err).Error("failed to create room")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, room)
}

func UpdateRoom(c *gin.Context) {
	id := c.Param("id")

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Protect generated fields from direct edits.
	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")

	if status, ok := updateData["status"].(string); ok && !models.ValidRoomStatus(status) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room status")
		return
	}

	result := config.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updateData)
	if result.Error != nil {
		if isDuplicateKeyErr(result.Error) {
			utils.JSONError(c, http.StatusConflict, "Room number already exists")
			return
		}
		logrus.WithError(result.Error).Error("failed to update room")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	var room models.Room
	if err := config.DB.Preload("Floor").Preload("RoomType").First(&room, "id = ?", id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	c.JSON(http.StatusOK, room)
}

func DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	var activeBookings int64
	config.DB.Model(&models.Booking{}).
		Where("room_id = ?", id).
		Where("status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&activeBookings)
	if activeBookings > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Cannot delete room with active or upcoming bookings")
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.Room{})
	if result.Error != nil {
		logrus.WithError(result.Error).Error("failed to delete room")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
