package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"oncall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Create inserts a new review and returns its ID. Reviews are never
// updated or deleted afterwards.
func (r *mongoReviewRepo) Create(ctx context.Context, review *models.Review) (string, error) {
	review.ID = primitive.NilObjectID
	review.CreatedAt = time.Now()

	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return "", fmt.Errorf("failed to create review: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	review.ID = oid
	return oid.Hex(), nil
}

// ListByTechnician fetches every review referencing the technician id.
func (r *mongoReviewRepo) ListByTechnician(ctx context.Context, technicianID string) ([]models.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"technician_id": technicianID})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for technician %s: %w", technicianID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}
