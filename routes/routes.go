package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-manager/config"
	"hotel-manager/controllers"
	"hotel-manager/middleware"
)

func SetupRouter(
	cfg *config.Config,
	log *logrus.Logger,
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	bl *controllers.BillingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	allowCredentials := true
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ac.Login)
		auth.GET("/profile", middleware.RequireAuth(cfg.JWTSecret), ac.Profile)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		floors := protected.Group("/floors")
		{
			floors.GET("", controllers.GetFloors)
			floors.GET("/:id", controllers.GetFloorByID)
			floors.POST("", controllers.CreateFloor)
			floors.PUT("/:id", controllers.UpdateFloor)
			floors.DELETE("/:id", controllers.DeleteFloor)
		}

		rooms := protected.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)

			// fixed segments before /:id so they don't collide
			rooms.GET("/status/:status", controllers.GetRoomsByStatus)
			rooms.GET("/floor/:floorId", controllers.GetRoomsByFloor)
			rooms.GET("/types/available", controllers.GetRoomTypes)

			rooms.GET("/:id", controllers.GetRoomByID)
			rooms.POST("", controllers.CreateRoom)
			rooms.PUT("/:id", controllers.UpdateRoom)
			rooms.PATCH("/:id", controllers.UpdateRoom)
			rooms.DELETE("/:id", controllers.DeleteRoom)
		}

		guests := protected.Group("/guests")
		{
			guests.GET("", controllers.GetGuests)
			guests.GET("/search/:phone", controllers.SearchGuestsByPhone)
			guests.GET("/:id", controllers.GetGuestByID)
			guests.POST("", controllers.CreateGuest)
			guests.PUT("/:id", controllers.UpdateGuest)
			guests.DELETE("/:id", controllers.DeleteGuest)
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/status/:status", bc.GetBookingsByStatus)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.POST("", bc.CreateBooking)
			bookings.PUT("/:id/checkin", bc.CheckIn)
			bookings.PUT("/:id/checkout", bc.CheckOut)
			bookings.PUT("/:id/cancel", bc.Cancel)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		billing := protected.Group("/billing")
		{
			billing.GET("/transactions", bl.GetTransactions)
			billing.GET("/invoice/:bookingId", bl.GetInvoice)
			billing.POST("/transaction", bl.AddTransaction)
			billing.GET("/reports/revenue", bl.RevenueReport)
			billing.GET("/reports/occupancy", bl.OccupancyReport)
		}
	}

	return r
}
