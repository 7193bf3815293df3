package tracking

import (
	"context"

	"oncall/utils"
)

// UpdateLocation upserts the technician's coordinates. If no technician
// with that id exists, one is created at that caller-supplied id; this
// deliberately diverges from the normal, store-generated creation flow.
// Coordinates are taken as-is, with no latitude/longitude bounds checks.
func (s *DefaultTrackingService) UpdateLocation(ctx context.Context, technicianID string, lat, lng float64) error {
	if technicianID == "" {
		return utils.ValidationError{Reason: "technician_id, lat, lng required"}
	}
	return s.Repo.UpsertLocation(ctx, technicianID, lat, lng)
}

// GetLocation returns the technician's coordinates, defaulting each to 0
// when absent on the stored record.
func (s *DefaultTrackingService) GetLocation(ctx context.Context, technicianID string) (float64, float64, error) {
	technician, err := s.Repo.GetByID(ctx, technicianID)
	if err != nil {
		return 0, 0, err
	}
	return technician.Lat, technician.Lng, nil
}
