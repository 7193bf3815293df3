package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is informational only; no other entity references it by id.
type Customer struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name" binding:"required"`
	Phone            string             `bson:"phone" json:"phone" binding:"required"`
	Email            string             `bson:"email,omitempty" json:"email,omitempty"`
	Address          string             `bson:"address,omitempty" json:"address,omitempty"`
	PreferredContact string             `bson:"preferred_contact,omitempty" json:"preferred_contact,omitempty" binding:"omitempty,oneof=phone email"`
	CreatedAt        time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt        time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
