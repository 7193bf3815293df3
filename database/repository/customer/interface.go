package customerRepo

import (
	"context"

	"oncall/database"
	"oncall/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) (string, error)
	List(ctx context.Context, limit int64) ([]models.Customer, error)
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a CustomerRepository backed by MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	return &mongoCustomerRepo{
		coll: database.Handle().Collection("customer"),
	}
}
