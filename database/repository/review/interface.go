package reviewRepo

import (
	"context"

	"oncall/database"
	"oncall/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) (string, error)
	ListByTechnician(ctx context.Context, technicianID string) ([]models.Review, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a ReviewRepository backed by MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	return &mongoReviewRepo{
		coll: database.Handle().Collection("review"),
	}
}
