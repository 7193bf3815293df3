package handlers

import (
	"net/http"

	"oncall/models"
	"oncall/services/directory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DirectoryHandler struct {
	Service directory.DirectoryService
	Logger  *zap.Logger
}

func NewDirectoryHandler(service directory.DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{Service: service, Logger: logger}
}

// CreateCustomer handles POST /customers.
func (h *DirectoryHandler) CreateCustomer(c *gin.Context) {
	var input models.Customer
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Service.RegisterCustomer(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListCustomers handles GET /customers.
func (h *DirectoryHandler) ListCustomers(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	customers, err := h.Service.ListCustomers(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("Failed to list customers", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

// CreateTechnician handles POST /technicians. IsAvailable is bound through
// a pointer so omitting it applies the schema default of true.
func (h *DirectoryHandler) CreateTechnician(c *gin.Context) {
	var input struct {
		Name        string   `json:"name" binding:"required"`
		Phone       string   `json:"phone" binding:"required"`
		Skills      []string `json:"skills"`
		Lat         float64  `json:"lat"`
		Lng         float64  `json:"lng"`
		IsAvailable *bool    `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	technician := models.Technician{
		Name:        input.Name,
		Phone:       input.Phone,
		Skills:      input.Skills,
		Lat:         input.Lat,
		Lng:         input.Lng,
		IsAvailable: input.IsAvailable == nil || *input.IsAvailable,
	}

	id, err := h.Service.RegisterTechnician(c.Request.Context(), technician)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListTechnicians handles GET /technicians.
func (h *DirectoryHandler) ListTechnicians(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	technicians, err := h.Service.ListTechnicians(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("Failed to list technicians", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	if technicians == nil {
		technicians = []models.Technician{}
	}
	c.JSON(http.StatusOK, technicians)
}
