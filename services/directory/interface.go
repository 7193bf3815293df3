package directory

import (
	"context"

	customerRepo "oncall/database/repository/customer"
	technicianRepo "oncall/database/repository/technician"
	"oncall/models"
)

// DirectoryService manages the customer and technician rosters. This is
// the normal, store-generated-id creation flow; the tracking upsert is the
// one sanctioned exception.
type DirectoryService interface {
	RegisterCustomer(ctx context.Context, customer models.Customer) (string, error)
	ListCustomers(ctx context.Context, limit int64) ([]models.Customer, error)
	RegisterTechnician(ctx context.Context, technician models.Technician) (string, error)
	ListTechnicians(ctx context.Context, limit int64) ([]models.Technician, error)
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Customers   customerRepo.CustomerRepository
	Technicians technicianRepo.TechnicianRepository
}
