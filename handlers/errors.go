package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"oncall/database/repository"
	"oncall/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// validation failures and malformed ids to 400, missing records to 404,
// anything else to 500.
func respondServiceError(c *gin.Context, err error) {
	var ve utils.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Reason})
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseLimit reads the limit query parameter, defaulting to 50. A
// non-numeric value aborts the request with a 400.
func parseLimit(c *gin.Context) (int64, bool) {
	raw := c.DefaultQuery("limit", "50")
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return 0, false
	}
	return limit, true
}
