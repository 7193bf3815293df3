package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is immutable once created. References are not checked against
// existing bookings or technicians.
type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookingID    string             `bson:"booking_id" json:"booking_id" binding:"required"`
	TechnicianID string             `bson:"technician_id" json:"technician_id" binding:"required"`
	Rating       int                `bson:"rating" json:"rating" binding:"required,min=1,max=5"`
	Comment      string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt    time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
