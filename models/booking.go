package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses. Only "requested" -> "assigned" is driven through an
// endpoint in this version; the remaining states exist for later lifecycle
// transitions.
const (
	BookingStatusRequested  = "requested"
	BookingStatusAssigned   = "assigned"
	BookingStatusEnRoute    = "en_route"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Booking represents a repair/maintenance service request.
// TechnicianID stays empty while the booking is requested; the assignment
// path sets it together with the status flip.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerName  string             `bson:"customer_name" json:"customer_name" binding:"required"`
	ContactPhone  string             `bson:"contact_phone" json:"contact_phone" binding:"required"`
	ContactEmail  string             `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	Category      string             `bson:"category" json:"category" binding:"required,oneof=home vehicle"`
	ServiceType   string             `bson:"service_type" json:"service_type" binding:"required"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	VehicleInfo   string             `bson:"vehicle_info,omitempty" json:"vehicle_info,omitempty"`
	ScheduledTime time.Time          `bson:"scheduled_time" json:"scheduled_time" binding:"required"`
	PriceQuote    float64            `bson:"price_quote" json:"price_quote" binding:"gte=0"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string             `bson:"status" json:"status"`
	TechnicianID  string             `bson:"technician_id,omitempty" json:"technician_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt     time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
