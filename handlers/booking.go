package handlers

import (
	"net/http"

	"oncall/models"
	"oncall/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListBookings handles GET /bookings with optional status and limit query
// parameters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	bookings, err := h.Service.ListBookings(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// AssignTechnician handles POST /bookings/assign. Extra fields in the body
// are ignored.
func (h *BookingHandler) AssignTechnician(c *gin.Context) {
	var req struct {
		BookingID    string `json:"booking_id" binding:"required"`
		TechnicianID string `json:"technician_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id and technician_id required"})
		return
	}

	if err := h.Service.AssignTechnician(c.Request.Context(), req.BookingID, req.TechnicianID); err != nil {
		h.Logger.Warn("Assignment failed",
			zap.String("bookingID", req.BookingID),
			zap.String("technicianID", req.TechnicianID),
			zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
