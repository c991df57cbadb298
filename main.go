package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotel-manager/config"
	"hotel-manager/controllers"
	"hotel-manager/repository"
	"hotel-manager/routes"
	"hotel-manager/services"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Info(".env not found; continuing with environment variables")
	}

	cfg := config.Load()

	if err := config.ConnectDatabase(cfg); err != nil {
		log.WithError(err).Fatal("database connect failed")
	}
	log.Info("database connection established, migrations applied")

	store := repository.NewGormStore(config.DB)

	bookingService := services.NewBookingService(store, cfg.BreakfastRate, log)
	billingService := services.NewBillingService(store, log)

	authController := controllers.NewAuthController(cfg.JWTSecret, cfg.TokenTTLHours, log)
	bookingController := controllers.NewBookingController(bookingService, log)
	billingController := controllers.NewBillingController(billingService, log)

	router := routes.SetupRouter(cfg, log, authController, bookingController, billingController)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe()")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server stopped gracefully")
}
