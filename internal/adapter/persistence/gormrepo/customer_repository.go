package gormrepo

import (
	"context"
	"errors"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	rec := customerRecord{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Customer{}, err
	}
	return rec.toEntity(), nil
}

func (r *CustomerRepository) GetCustomer(ctx context.Context, tenantID, id string) (entities.Customer, error) {
	var rec customerRecord
	err := r.db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return rec.toEntity(), nil
}

func (r *CustomerRepository) ListCustomers(ctx context.Context, tenantID string) ([]entities.Customer, error) {
	var recs []customerRecord
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

func (r *CustomerRepository) CreateAddress(ctx context.Context, a entities.Address) (entities.Address, error) {
	rec := addressRecord{
		ID:         a.ID,
		TenantID:   a.TenantID,
		CustomerID: a.CustomerID,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		CreatedAt:  a.CreatedAt.UTC(),
		UpdatedAt:  a.UpdatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Address{}, err
	}
	return rec.toEntity(), nil
}

func (r *CustomerRepository) GetAddress(ctx context.Context, tenantID, id string) (entities.Address, error) {
	var rec addressRecord
	err := r.db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Address{}, nil
	}
	if err != nil {
		return entities.Address{}, err
	}
	return rec.toEntity(), nil
}

func (r *CustomerRepository) ListAddresses(ctx context.Context, tenantID, customerID string) ([]entities.Address, error) {
	var recs []addressRecord
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Address, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}
