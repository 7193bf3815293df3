package handlers

import (
	"net/http"

	"oncall/models"
	"oncall/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Service payment.PaymentService
	Logger  *zap.Logger
}

func NewPaymentHandler(service payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: service, Logger: logger}
}

// CreateIntent handles POST /payments/intent. Amount binds through a
// pointer so an explicit 0 is accepted while an omitted amount fails
// the required check.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var input struct {
		BookingID string   `json:"booking_id" binding:"required"`
		Amount    *float64 `json:"amount" binding:"required,gte=0"`
		Currency  string   `json:"currency" binding:"omitempty,oneof=usd eur gbp"`
		Provider  string   `json:"provider" binding:"omitempty,oneof=mock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	intent, err := h.Service.CreateIntent(c.Request.Context(), models.Payment{
		BookingID: input.BookingID,
		Amount:    *input.Amount,
		Currency:  input.Currency,
		Provider:  input.Provider,
	})
	if err != nil {
		h.Logger.Error("Failed to create payment intent", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, intent)
}

// ConfirmPayment handles POST /payments/confirm. Extra fields in the body
// are ignored.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req struct {
		TransactionID string `json:"transaction_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transaction_id required"})
		return
	}

	status, err := h.Service.Confirm(c.Request.Context(), req.TransactionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}
