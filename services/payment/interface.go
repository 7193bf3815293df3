package payment

import (
	"context"

	paymentRepo "oncall/database/repository/payment"
	"oncall/models"
)

// Intent is the result of creating a payment intent.
type Intent struct {
	ClientSecret  string `json:"client_secret"`
	TransactionID string `json:"transaction_id"`
}

// PaymentService drives the mocked payment lifecycle:
// pending -> succeeded (the failed state exists but has no endpoint).
type PaymentService interface {
	CreateIntent(ctx context.Context, payment models.Payment) (*Intent, error)
	Confirm(ctx context.Context, transactionID string) (string, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo paymentRepo.PaymentRepository
}
