package booking

import (
	"context"

	bookingRepo "oncall/database/repository/booking"
	"oncall/models"
)

// BookingService covers the booking lifecycle: creation, listing, and
// technician assignment.
type BookingService interface {
	CreateBooking(ctx context.Context, booking models.Booking) (string, error)
	ListBookings(ctx context.Context, status string, limit int64) ([]models.Booking, error)
	AssignTechnician(ctx context.Context, bookingID, technicianID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
