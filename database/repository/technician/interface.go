package technicianRepo

import (
	"context"

	"oncall/database"
	"oncall/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TechnicianRepository interface {
	Create(ctx context.Context, technician *models.Technician) (string, error)
	List(ctx context.Context, limit int64) ([]models.Technician, error)
	GetByID(ctx context.Context, id string) (*models.Technician, error)
	UpsertLocation(ctx context.Context, id string, lat, lng float64) error
	SetRating(ctx context.Context, id string, avg float64, count int) error
}

type mongoTechnicianRepo struct {
	coll *mongo.Collection
}

// NewMongoTechnicianRepo returns a TechnicianRepository backed by MongoDB.
func NewMongoTechnicianRepo() TechnicianRepository {
	return &mongoTechnicianRepo{
		coll: database.Handle().Collection("technician"),
	}
}
