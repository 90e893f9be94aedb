package usecase

import (
	"context"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ICustomerUseCase interface {
	CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetCustomer(ctx context.Context, tenantID, id string) (entities.Customer, error)
	ListCustomers(ctx context.Context, tenantID string) ([]entities.Customer, error)
	CreateAddress(ctx context.Context, a entities.Address) (entities.Address, error)
	ListAddresses(ctx context.Context, tenantID, customerID string) ([]entities.Address, error)
}

type CustomerUseCase struct {
	repo   interfaces.ICustomerRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, logger *zap.Logger) *CustomerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerUseCase{
		repo:   repo,
		logger: logger.Named("customers"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *CustomerUseCase) CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.TenantID = strings.TrimSpace(c.TenantID)
	if c.TenantID == "" {
		return entities.Customer{}, ErrInvalidTenantID
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidName
	}
	c.ID = uuid.NewString()
	c.CreatedAt = u.now()
	c.UpdatedAt = c.CreatedAt

	created, err := u.repo.CreateCustomer(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	u.logger.Info("customer created", zap.String("tenant_id", created.TenantID), zap.String("customer_id", created.ID))
	return created, nil
}

func (u *CustomerUseCase) GetCustomer(ctx context.Context, tenantID, id string) (entities.Customer, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Customer{}, ErrInvalidTenantID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetCustomer(ctx, tenantID, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) ListCustomers(ctx context.Context, tenantID string) ([]entities.Customer, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListCustomers(ctx, tenantID)
}

// CreateAddress adds a service address to an existing customer.
func (u *CustomerUseCase) CreateAddress(ctx context.Context, a entities.Address) (entities.Address, error) {
	if _, err := u.GetCustomer(ctx, a.TenantID, a.CustomerID); err != nil {
		return entities.Address{}, err
	}
	a.TenantID = strings.TrimSpace(a.TenantID)
	a.CustomerID = strings.TrimSpace(a.CustomerID)
	a.Street = strings.TrimSpace(a.Street)
	if a.Street == "" {
		return entities.Address{}, ErrInvalidStreet
	}
	a.ID = uuid.NewString()
	a.CreatedAt = u.now()
	a.UpdatedAt = a.CreatedAt

	created, err := u.repo.CreateAddress(ctx, a)
	if err != nil {
		return entities.Address{}, err
	}
	u.logger.Info("address created", zap.String("customer_id", created.CustomerID), zap.String("address_id", created.ID))
	return created, nil
}

func (u *CustomerUseCase) ListAddresses(ctx context.Context, tenantID, customerID string) ([]entities.Address, error) {
	if _, err := u.GetCustomer(ctx, tenantID, customerID); err != nil {
		return nil, err
	}
	return u.repo.ListAddresses(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(customerID))
}
