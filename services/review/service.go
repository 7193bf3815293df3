package review

import (
	"context"
	"fmt"

	"oncall/models"
	"oncall/utils"

	"go.uber.org/zap"
)

// CreateReview persists the review, then recomputes the technician's
// rating aggregate from every review on record (the one just created
// included). The recompute is best-effort: any failure, malformed
// technician id included, is logged and swallowed; the review itself is
// never rolled back. The read-then-write is unguarded, so concurrent
// reviews for the same technician can leave rating_count behind the true
// review count.
func (s *DefaultReviewService) CreateReview(ctx context.Context, review models.Review) (string, error) {
	id, err := s.Reviews.Create(ctx, &review)
	if err != nil {
		utils.GetLogger().Error("Failed to create review", zap.Error(err))
		return "", fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.recomputeRating(ctx, review.TechnicianID); err != nil {
		utils.GetLogger().Warn("Rating aggregate update failed",
			zap.String("technicianID", review.TechnicianID), zap.Error(err))
	}
	return id, nil
}

// recomputeRating writes the arithmetic mean and count of all reviews for
// the technician onto the technician record. Cumulative, not incremental.
func (s *DefaultReviewService) recomputeRating(ctx context.Context, technicianID string) error {
	reviews, err := s.Reviews.ListByTechnician(ctx, technicianID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))

	return s.Technicians.SetRating(ctx, technicianID, avg, len(reviews))
}
