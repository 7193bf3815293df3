package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Booking endpoints.
	CreateBooking    gin.HandlerFunc
	ListBookings     gin.HandlerFunc
	AssignTechnician gin.HandlerFunc

	// Tracking endpoints.
	UpdateLocation gin.HandlerFunc
	GetLocation    gin.HandlerFunc

	// Review endpoints.
	CreateReview gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntent gin.HandlerFunc
	ConfirmPayment      gin.HandlerFunc

	// Directory endpoints.
	CreateCustomer   gin.HandlerFunc
	ListCustomers    gin.HandlerFunc
	CreateTechnician gin.HandlerFunc
	ListTechnicians  gin.HandlerFunc

	// Diagnostics.
	Root         gin.HandlerFunc
	TestDatabase gin.HandlerFunc
	GetSchema    gin.HandlerFunc
}
