// File: oncall/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oncall/config"
	"oncall/database"
	bookingRepo "oncall/database/repository/booking"
	customerRepo "oncall/database/repository/customer"
	paymentRepo "oncall/database/repository/payment"
	reviewRepo "oncall/database/repository/review"
	technicianRepo "oncall/database/repository/technician"
	"oncall/handlers"
	"oncall/middleware"
	"oncall/routes"
	"oncall/services/booking"
	"oncall/services/directory"
	"oncall/services/payment"
	"oncall/services/review"
	"oncall/services/tracking"
	"oncall/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	technicians := technicianRepo.NewMongoTechnicianRepo()
	reviews := reviewRepo.NewMongoReviewRepo()
	payments := paymentRepo.NewMongoPaymentRepo()
	customers := customerRepo.NewMongoCustomerRepo()

	// services.
	bookingService := &booking.DefaultBookingService{Repo: bookings}
	trackingService := &tracking.DefaultTrackingService{Repo: technicians}
	reviewService := &review.DefaultReviewService{Reviews: reviews, Technicians: technicians}
	paymentService := &payment.DefaultPaymentService{Repo: payments}
	directoryService := &directory.DefaultDirectoryService{Customers: customers, Technicians: technicians}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	trackingHandler := handlers.NewTrackingHandler(trackingService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	directoryHandler := handlers.NewDirectoryHandler(directoryService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBooking:    bookingHandler.CreateBooking,
		ListBookings:     bookingHandler.ListBookings,
		AssignTechnician: bookingHandler.AssignTechnician,

		UpdateLocation: trackingHandler.UpdateLocation,
		GetLocation:    trackingHandler.GetLocation,

		CreateReview: reviewHandler.CreateReview,

		CreatePaymentIntent: paymentHandler.CreateIntent,
		ConfirmPayment:      paymentHandler.ConfirmPayment,

		CreateCustomer:   directoryHandler.CreateCustomer,
		ListCustomers:    directoryHandler.ListCustomers,
		CreateTechnician: directoryHandler.CreateTechnician,
		ListTechnicians:  directoryHandler.ListTechnicians,

		Root:         handlers.Root,
		TestDatabase: handlers.TestDatabase,
		GetSchema:    handlers.GetSchema,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
