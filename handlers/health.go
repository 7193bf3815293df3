package handlers

import (
	"net/http"

	"oncall/config"
	"oncall/database"

	"github.com/gin-gonic/gin"
)

// Root handles GET /.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "On-Call Repairs & Maintenance Backend Running"})
}

// TestDatabase handles GET /test: a diagnostic snapshot of backend and
// store connectivity. The field set and marker strings are part of the
// public contract; admin tooling keys off them.
func TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if database.MongoClient == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	ctx := c.Request.Context()
	if err := database.Ping(ctx); err != nil {
		response["database"] = "❌ Error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "✅ Connected & Working"
	if config.AppConfig.DatabaseURL != "" {
		response["database_url"] = "✅ Set"
	} else {
		response["database_url"] = "❌ Not Set"
	}
	response["database_name"] = config.AppConfig.DatabaseName
	response["connection_status"] = "Connected"

	if collections, err := database.ListCollections(ctx, 10); err != nil {
		response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
	} else if collections != nil {
		response["collections"] = collections
	}

	c.JSON(http.StatusOK, response)
}

// truncate shortens s to at most n runes, never splitting a multibyte
// character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
