package paymentRepo

import (
	"context"

	"oncall/database"
	"oncall/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (string, error)
	SetIntent(ctx context.Context, id string) error
	MarkSucceeded(ctx context.Context, id string) error
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo returns a PaymentRepository backed by MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	return &mongoPaymentRepo{
		coll: database.Handle().Collection("payment"),
	}
}
