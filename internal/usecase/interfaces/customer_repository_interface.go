package interfaces

import (
	"context"

	"fieldservice/internal/domain/entities"
)

// ICustomerRepository abstracts persistence for customers and their service
// addresses. Lookups return zero values when nothing matches the tenant.
type ICustomerRepository interface {
	CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetCustomer(ctx context.Context, tenantID, id string) (entities.Customer, error)
	ListCustomers(ctx context.Context, tenantID string) ([]entities.Customer, error)

	CreateAddress(ctx context.Context, a entities.Address) (entities.Address, error)
	GetAddress(ctx context.Context, tenantID, id string) (entities.Address, error)
	ListAddresses(ctx context.Context, tenantID, customerID string) ([]entities.Address, error)
}
