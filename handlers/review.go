package handlers

import (
	"net/http"

	"oncall/models"
	"oncall/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	Service review.ReviewService
	Logger  *zap.Logger
}

func NewReviewHandler(service review.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Service: service, Logger: logger}
}

// CreateReview handles POST /reviews. A failed rating aggregate update
// does not fail the request; the review is already persisted.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input models.Review
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Service.CreateReview(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("Failed to create review", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
