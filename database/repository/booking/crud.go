package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"oncall/database/repository"
	"oncall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	now := time.Now()
	booking.ID = primitive.NilObjectID
	booking.CreatedAt = now
	booking.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	booking.ID = oid
	return oid.Hex(), nil
}

// List returns up to limit bookings, optionally filtered by exact status.
// Ordering is whatever the store returns.
func (r *mongoBookingRepo) List(ctx context.Context, status string, limit int64) ([]models.Booking, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Assign sets the technician and flips the booking to assigned. A malformed
// booking id yields ErrInvalidID; a well-formed id matching no document
// yields ErrNotFound. The technician id is not checked for existence.
func (r *mongoBookingRepo) Assign(ctx context.Context, bookingID, technicianID string) error {
	oid, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return fmt.Errorf("booking id %q: %w", bookingID, repository.ErrInvalidID)
	}

	update := bson.M{"$set": bson.M{
		"technician_id": technicianID,
		"status":        models.BookingStatusAssigned,
		"updated_at":    time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to assign booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", bookingID, repository.ErrNotFound)
	}
	return nil
}
