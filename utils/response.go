package utils

import (
	"errors"
	"net/http"

	"hotel-manager/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// ServiceError maps a service failure onto the HTTP taxonomy: validation
// and wrong-state errors are 400, missing resources 404, double bookings
// 409, everything else a logged 500 with a generic body.
func ServiceError(c *gin.Context, log *logrus.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrRoomUnavailable):
		JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDateConflict):
		JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		JSONError(c, http.StatusNotFound, err.Error())
	default:
		log.WithError(err).Error("unexpected error")
		JSONError(c, http.StatusInternalServerError, "Server error")
	}
}
