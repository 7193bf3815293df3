package handlers

import (
	"net/http"

	"oncall/models"

	"github.com/gin-gonic/gin"
)

// GetSchema handles GET /schema, exposing the entity JSON Schemas to aid
// admin tools.
func GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, models.Schemas())
}
