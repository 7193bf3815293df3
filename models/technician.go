package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Technician carries live coordinates plus the derived rating aggregate.
// RatingAvg and RatingCount are written only by the review service.
type Technician struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Phone       string             `bson:"phone" json:"phone" binding:"required"`
	Skills      []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Lat         float64            `bson:"lat" json:"lat"`
	Lng         float64            `bson:"lng" json:"lng"`
	IsAvailable bool               `bson:"is_available" json:"is_available"`
	RatingAvg   float64            `bson:"rating_avg" json:"rating_avg"`
	RatingCount int                `bson:"rating_count" json:"rating_count"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
