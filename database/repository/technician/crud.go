package technicianRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oncall/database/repository"
	"oncall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new technician document and returns its ID.
func (r *mongoTechnicianRepo) Create(ctx context.Context, technician *models.Technician) (string, error) {
	now := time.Now()
	technician.ID = primitive.NilObjectID
	technician.CreatedAt = now
	technician.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, technician)
	if err != nil {
		return "", fmt.Errorf("failed to create technician: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	technician.ID = oid
	return oid.Hex(), nil
}

// List returns up to limit technicians.
func (r *mongoTechnicianRepo) List(ctx context.Context, limit int64) ([]models.Technician, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	defer cursor.Close(ctx)

	var technicians []models.Technician
	if err := cursor.All(ctx, &technicians); err != nil {
		return nil, fmt.Errorf("failed to decode technicians: %w", err)
	}
	return technicians, nil
}

// GetByID returns a technician by id, ErrInvalidID on malformed hex and
// ErrNotFound when no document matches.
func (r *mongoTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("technician id %q: %w", id, repository.ErrInvalidID)
	}

	var technician models.Technician
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&technician); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("technician %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get technician %s: %w", id, err)
	}
	return &technician, nil
}

// UpsertLocation writes the technician's coordinates, creating a document
// at the caller-supplied id if none exists. This is the one path where the
// id is not store-generated; keep it that way.
func (r *mongoTechnicianRepo) UpsertLocation(ctx context.Context, id string, lat, lng float64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("technician id %q: %w", id, repository.ErrInvalidID)
	}

	update := bson.M{"$set": bson.M{
		"lat":        lat,
		"lng":        lng,
		"updated_at": time.Now(),
	}}
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert location for technician %s: %w", id, err)
	}
	return nil
}

// SetRating overwrites the derived rating aggregate.
func (r *mongoTechnicianRepo) SetRating(ctx context.Context, id string, avg float64, count int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("technician id %q: %w", id, repository.ErrInvalidID)
	}

	update := bson.M{"$set": bson.M{
		"rating_avg":   avg,
		"rating_count": count,
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return fmt.Errorf("failed to set rating for technician %s: %w", id, err)
	}
	return nil
}
