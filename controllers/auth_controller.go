package controllers

import (
	"net/http"
	"strings"
	"time"

	"hotel-manager/config"
	"hotel-manager/models"
	"hotel-manager/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	secret string
	ttl    time.Duration
	log    *logrus.Logger
}

func NewAuthController(secret string, ttlHours int, log *logrus.Logger) *AuthController {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthController{secret: secret, ttl: time.Duration(ttlHours) * time.Hour, log: log}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Please provide username and password")
		return
	}

	var manager models.Manager
	if err := config.DB.Where("username = ?", username).First(&manager).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(manager.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       manager.ID,
		"username": manager.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(a.ttl).Unix(),
	})

	signed, err := token.SignedString([]byte(a.secret))
	if err != nil {
		a.log.WithError(err).Error("failed to sign token")
		utils.JSONError(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"id":        manager.ID,
			"username":  manager.Username,
			"full_name": manager.FullName,
		},
	})
}

func (a *AuthController) Profile(c *gin.Context) {
	id, ok := c.Get("manager_id")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var manager models.Manager
	if err := config.DB.First(&manager, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "Manager not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        manager.ID,
			"username":  manager.Username,
			"full_name": manager.FullName,
		},
	})
}
