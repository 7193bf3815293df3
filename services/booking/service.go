package booking

import (
	"context"
	"fmt"

	"oncall/models"
	"oncall/utils"

	"go.uber.org/zap"
)

const DefaultListLimit = 50

// CreateBooking persists a new booking. Schema defaults are applied here:
// the status is forced to requested and any caller-supplied technician id
// is discarded; assignment is a separate operation. No other entity is
// touched.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, booking models.Booking) (string, error) {
	booking.Status = models.BookingStatusRequested
	booking.TechnicianID = ""

	id, err := s.Repo.Create(ctx, &booking)
	if err != nil {
		utils.GetLogger().Error("Failed to create booking", zap.Error(err))
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	return id, nil
}

// ListBookings returns up to limit bookings, optionally filtered by exact
// status match.
func (s *DefaultBookingService) ListBookings(ctx context.Context, status string, limit int64) ([]models.Booking, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.Repo.List(ctx, status, limit)
}

// AssignTechnician links a technician to a booking and flips its status to
// assigned. The technician id is written as given; whether a technician
// with that id exists is not verified.
func (s *DefaultBookingService) AssignTechnician(ctx context.Context, bookingID, technicianID string) error {
	if bookingID == "" || technicianID == "" {
		return utils.ValidationError{Reason: "booking_id and technician_id required"}
	}
	return s.Repo.Assign(ctx, bookingID, technicianID)
}
