package controllers

import (
	"net/http"

	"hotel-manager/config"
	"hotel-manager/models"
	"hotel-manager/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := config.DB.Order("type_name").Find(&roomTypes).Error; err != nil {
		logrus.WithError(err).Error("failed to list room types")
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, roomTypes)
}
