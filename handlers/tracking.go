package handlers

import (
	"net/http"

	"oncall/services/tracking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TrackingHandler struct {
	Service tracking.TrackingService
	Logger  *zap.Logger
}

func NewTrackingHandler(service tracking.TrackingService, logger *zap.Logger) *TrackingHandler {
	return &TrackingHandler{Service: service, Logger: logger}
}

// UpdateLocation handles POST /track/update. Lat and lng are bound through
// pointers so an explicit 0 passes the required check while a missing
// coordinate does not.
func (h *TrackingHandler) UpdateLocation(c *gin.Context) {
	var req struct {
		TechnicianID string   `json:"technician_id" binding:"required"`
		Lat          *float64 `json:"lat" binding:"required"`
		Lng          *float64 `json:"lng" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "technician_id, lat, lng required"})
		return
	}

	if err := h.Service.UpdateLocation(c.Request.Context(), req.TechnicianID, *req.Lat, *req.Lng); err != nil {
		h.Logger.Warn("Location update failed", zap.String("technicianID", req.TechnicianID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetLocation handles GET /track/:technician_id.
func (h *TrackingHandler) GetLocation(c *gin.Context) {
	technicianID := c.Param("technician_id")

	lat, lng, err := h.Service.GetLocation(c.Request.Context(), technicianID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lat": lat, "lng": lng})
}
