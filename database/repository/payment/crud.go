package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"oncall/database/repository"
	"oncall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Create inserts a new payment document and returns its ID.
func (r *mongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) (string, error) {
	now := time.Now()
	payment.ID = primitive.NilObjectID
	payment.CreatedAt = now
	payment.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("failed to create payment: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	payment.ID = oid
	return oid.Hex(), nil
}

// SetIntent forces the freshly created payment into the pending state and
// stamps transaction_id with the record's own identifier.
func (r *mongoPaymentRepo) SetIntent(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("payment id %q: %w", id, repository.ErrInvalidID)
	}

	update := bson.M{"$set": bson.M{
		"status":         models.PaymentStatusPending,
		"transaction_id": id,
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return fmt.Errorf("failed to set intent on payment %s: %w", id, err)
	}
	return nil
}

// MarkSucceeded unconditionally sets the payment to succeeded. The match
// count is deliberately ignored: confirming an id with no matching record
// is a silent no-op, unlike the booking assign path.
func (r *mongoPaymentRepo) MarkSucceeded(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("payment id %q: %w", id, repository.ErrInvalidID)
	}

	update := bson.M{"$set": bson.M{
		"status":     models.PaymentStatusSucceeded,
		"updated_at": time.Now(),
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return fmt.Errorf("failed to confirm payment %s: %w", id, err)
	}
	return nil
}
