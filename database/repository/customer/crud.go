package customerRepo

import (
	"context"
	"fmt"
	"time"

	"oncall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new customer document and returns its ID.
func (r *mongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) (string, error) {
	now := time.Now()
	customer.ID = primitive.NilObjectID
	customer.CreatedAt = now
	customer.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, customer)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	customer.ID = oid
	return oid.Hex(), nil
}

// List returns up to limit customers.
func (r *mongoCustomerRepo) List(ctx context.Context, limit int64) ([]models.Customer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}
