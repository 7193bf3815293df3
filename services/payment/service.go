package payment

import (
	"context"
	"fmt"

	"oncall/models"
	"oncall/utils"

	"go.uber.org/zap"
)

// CreateIntent persists the payment with status forced to pending and
// transaction_id set to the record's own identifier, then returns the
// synthesized client secret. A real integration would call out to a
// payment network here; the mock provider never does.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, payment models.Payment) (*Intent, error) {
	if payment.Currency == "" {
		payment.Currency = "usd"
	}
	payment.Provider = models.PaymentProviderMock
	payment.Status = models.PaymentStatusPending

	id, err := s.Repo.Create(ctx, &payment)
	if err != nil {
		utils.GetLogger().Error("Failed to create payment intent", zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	if err := s.Repo.SetIntent(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to stamp payment intent %s: %w", id, err)
	}

	return &Intent{
		ClientSecret:  models.ClientSecretPrefix + id,
		TransactionID: id,
	}, nil
}

// Confirm moves the payment to succeeded, whatever its current state.
// Confirming an id with no matching record succeeds too; the only hard
// failures are an empty or malformed transaction id. Calling Confirm twice
// is therefore idempotent.
func (s *DefaultPaymentService) Confirm(ctx context.Context, transactionID string) (string, error) {
	if transactionID == "" {
		return "", utils.ValidationError{Reason: "transaction_id required"}
	}
	if err := s.Repo.MarkSucceeded(ctx, transactionID); err != nil {
		return "", err
	}
	return models.PaymentStatusSucceeded, nil
}
