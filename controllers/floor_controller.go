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

func GetFloors(c *gin.Context) {
	var floors []models.Floor
	if err := config.DB.Order("floor_number").Find(&floors).Error; err != nil {
		logrus.WithError(err).Error("failed to list floors")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, floors)
}

func GetFloorByID(c *gin.Context) {
	var floor models.Floor
	if err := config.DB.First(&floor, "id = ?", c.Param("id")).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Floor not found")
		return
	}
	c.JSON(http.StatusOK, floor)
}

type floorPayload struct {
	FloorNumber *int   `json:"floor_number"`
	FloorName   string `json:"floor_name"`
	Description string `json:"description"`
}

func CreateFloor(c *gin.Context) {
	var payload floorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FloorNumber == nil {
		utils.JSONError(c, http.StatusBadRequest, "Floor number is required")
		return
	}

	floor := models.Floor{
		FloorNumber: *payload.FloorNumber,
		FloorName:   strings.TrimSpace(payload.FloorName),
		Description: payload.Description,
	}

	if err := config.DB.Create(&floor).Error; err != nil {
		if isDuplicateKeyErr(err) {
			utils.JSONError(c, http.StatusBadRequest, "Floor number already exists")
			return
		}
		logrus.WithError(err).Error("failed to create floor")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, floor)
}

func UpdateFloor(c *gin.Context) {
	var payload floorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var floor models.Floor
	if err := config.DB.First(&floor, "id = ?", c.Param("id")).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Floor not found")
		return
	}

	if payload.FloorNumber != nil {
		floor.FloorNumber = *payload.FloorNumber
	}
	floor.FloorName = strings.TrimSpace(payload.FloorName)
	floor.Description = payload.Description

	if err := config.DB.Save(&floor).Error; err != nil {
		if isDuplicateKeyErr(err) {
			utils.JSONError(c, http.StatusBadRequest, "Floor number already exists")
			return
		}
		logrus.WithError(err).Error("failed to update floor")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, floor)
}

func DeleteFloor(c *gin.Context) {
	id := c.Param("id")

	var roomCount int64
	config.DB.Model(&models.Room{}).Where("floor_id = ?", id).Count(&roomCount)
	if roomCount > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Cannot delete floor with existing rooms. Delete rooms first.")
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.Floor{})
	if result.Error != nil {
		logrus.WithError(result.Error).Error("failed to delete floor")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Floor not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Floor deleted successfully"})
}

func isDuplicateKeyErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}
