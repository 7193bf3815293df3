package bookingRepo

import (
	"context"

	"oncall/database"
	"oncall/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	List(ctx context.Context, status string, limit int64) ([]models.Booking, error)
	Assign(ctx context.Context, bookingID, technicianID string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.Handle().Collection("booking"),
	}
}
