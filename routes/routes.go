package routes

import (
	"time"

	"oncall/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/bookings", hb.CreateBooking)
	r.GET("/bookings", hb.ListBookings)
	r.POST("/bookings/assign", hb.AssignTechnician)
}

// RegisterTrackingRoutes registers the technician location endpoints.
func RegisterTrackingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/track/update", hb.UpdateLocation)
	r.GET("/track/:technician_id", hb.GetLocation)
}

// RegisterReviewRoutes registers the review endpoint.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/reviews", hb.CreateReview)
}

// RegisterPaymentRoutes registers the mock payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/payments/intent", hb.CreatePaymentIntent)
	r.POST("/payments/confirm", hb.ConfirmPayment)
}

// RegisterDirectoryRoutes registers customer and technician roster
// endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/customers", hb.CreateCustomer)
	r.GET("/customers", hb.ListCustomers)
	r.POST("/technicians", hb.CreateTechnician)
	r.GET("/technicians", hb.ListTechnicians)
}

// RegisterDiagnosticsRoutes registers the banner, store diagnostics, and
// schema endpoints.
func RegisterDiagnosticsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Root)
	r.GET("/test", hb.TestDatabase)
	r.GET("/schema", hb.GetSchema)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// CORS is wide open; the API is public and the permissive policy is part
// of its compatibility contract.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDiagnosticsRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterTrackingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
}
