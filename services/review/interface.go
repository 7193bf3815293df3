package review

import (
	"context"

	reviewRepo "oncall/database/repository/review"
	technicianRepo "oncall/database/repository/technician"
	"oncall/models"
)

// ReviewService records reviews and maintains the technician rating
// aggregate.
type ReviewService interface {
	CreateReview(ctx context.Context, review models.Review) (string, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Reviews     reviewRepo.ReviewRepository
	Technicians technicianRepo.TechnicianRepository
}
