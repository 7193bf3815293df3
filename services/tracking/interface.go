package tracking

import (
	"context"

	technicianRepo "oncall/database/repository/technician"
)

// TrackingService records and serves a technician's live coordinates.
type TrackingService interface {
	UpdateLocation(ctx context.Context, technicianID string, lat, lng float64) error
	GetLocation(ctx context.Context, technicianID string) (lat, lng float64, err error)
}

// DefaultTrackingService is the production implementation.
type DefaultTrackingService struct {
	Repo technicianRepo.TechnicianRepository
}
