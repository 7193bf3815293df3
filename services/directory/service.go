package directory

import (
	"context"
	"fmt"

	"oncall/models"
	"oncall/utils"

	"go.uber.org/zap"
)

const DefaultListLimit = 50

// RegisterCustomer persists a new customer with the preferred contact
// channel defaulting to phone.
func (s *DefaultDirectoryService) RegisterCustomer(ctx context.Context, customer models.Customer) (string, error) {
	if customer.PreferredContact == "" {
		customer.PreferredContact = "phone"
	}

	id, err := s.Customers.Create(ctx, &customer)
	if err != nil {
		utils.GetLogger().Error("Failed to register customer", zap.Error(err))
		return "", fmt.Errorf("failed to register customer: %w", err)
	}
	return id, nil
}

// ListCustomers returns up to limit customers.
func (s *DefaultDirectoryService) ListCustomers(ctx context.Context, limit int64) ([]models.Customer, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.Customers.List(ctx, limit)
}

// RegisterTechnician persists a new technician. The rating aggregate
// starts at zero and is only ever written by the review service.
func (s *DefaultDirectoryService) RegisterTechnician(ctx context.Context, technician models.Technician) (string, error) {
	technician.RatingAvg = 0
	technician.RatingCount = 0

	id, err := s.Technicians.Create(ctx, &technician)
	if err != nil {
		utils.GetLogger().Error("Failed to register technician", zap.Error(err))
		return "", fmt.Errorf("failed to register technician: %w", err)
	}
	return id, nil
}

// ListTechnicians returns up to limit technicians.
func (s *DefaultDirectoryService) ListTechnicians(ctx context.Context, limit int64) ([]models.Technician, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.Technicians.List(ctx, limit)
}
