package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/pricing"
	"fieldservice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IEstimateUseCase exposes tenant-scoped estimate operations.
type IEstimateUseCase interface {
	Create(ctx context.Context, cmd CreateEstimateCommand) (entities.Estimate, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Estimate, error)
	List(ctx context.Context, tenantID string) ([]entities.Estimate, error)
	Update(ctx context.Context, tenantID, id string, cmd UpdateEstimateCommand) (entities.Estimate, error)
	Delete(ctx context.Context, tenantID, id string) error

	Send(ctx context.Context, tenantID, id string) (entities.Estimate, error)
	MarkViewed(ctx context.Context, tenantID, id string) (entities.Estimate, error)
	Approve(ctx context.Context, tenantID, id string) (entities.Estimate, error)
	Decline(ctx context.Context, tenantID, id string) (entities.Estimate, error)

	// ExpireOverdue moves sent or viewed estimates past their ValidUntil to
	// EXPIRED and returns how many were updated.
	ExpireOverdue(ctx context.Context) (int, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	customers interfaces.ICustomerRepository
	numbers   *EstimateNumberGenerator
	logger    *zap.Logger
	now       func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, customers interfaces.ICustomerRepository, logger *zap.Logger) *EstimateUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateUseCase{
		repo:      repo,
		customers: customers,
		numbers:   NewEstimateNumberGenerator(repo),
		logger:    logger.Named("estimates"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *EstimateUseCase) Create(ctx context.Context, cmd CreateEstimateCommand) (entities.Estimate, error) {
	tenantID := strings.TrimSpace(cmd.TenantID)
	if tenantID == "" {
		return entities.Estimate{}, ErrInvalidTenantID
	}
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return entities.Estimate{}, ErrInvalidCustomerID
	}
	addressID := strings.TrimSpace(cmd.AddressID)
	if addressID == "" {
		return entities.Estimate{}, ErrInvalidAddressID
	}
	status := cmd.Status
	if status == "" {
		status = entities.EstimateStatusDraft
	}
	if !status.Valid() {
		return entities.Estimate{}, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if cmd.TaxRate.IsNegative() {
		return entities.Estimate{}, ErrNegativeAmount
	}

	id := uuid.NewString()
	options, err := buildOptions(id, cmd.Options, cmd.TaxRate)
	if err != nil {
		return entities.Estimate{}, err
	}

	customer, address, err := u.resolveParties(ctx, tenantID, customerID, addressID)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := u.now()
	e := entities.Estimate{
		ID:                 id,
		TenantID:           tenantID,
		CustomerID:         customerID,
		AddressID:          addressID,
		Status:             entities.EstimateStatusDraft,
		Title:              cmd.Title,
		Message:            cmd.Message,
		TermsAndConditions: cmd.TermsAndConditions,
		ValidUntil:         cmd.ValidUntil,
		Options:            options,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	e.StampStatus(status, now)
	e.SortOptions()
	pricing.PriceEstimate(&e)

	var created entities.Estimate
	_, err = u.numbers.Allocate(ctx, tenantID, func(number string) error {
		e.EstimateNumber = number
		var insertErr error
		created, insertErr = u.repo.Create(ctx, e)
		return insertErr
	})
	if err != nil {
		u.logger.Error("create estimate failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return entities.Estimate{}, err
	}

	created.Customer = &customer
	created.Address = &address
	u.logger.Info("estimate created",
		zap.String("tenant_id", tenantID),
		zap.String("estimate_id", created.ID),
		zap.String("estimate_number", created.EstimateNumber),
		zap.String("total", created.Total.StringFixed(2)),
	)
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	e, err := u.load(ctx, tenantID, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	u.attachParties(ctx, []*entities.Estimate{&e})
	return e, nil
}

func (u *EstimateUseCase) List(ctx context.Context, tenantID string) ([]entities.Estimate, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	list, err := u.repo.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	refs := make([]*entities.Estimate, len(list))
	for i := range list {
		refs[i] = &list[i]
	}
	u.attachParties(ctx, refs)
	return list, nil
}

func (u *EstimateUseCase) Update(ctx context.Context, tenantID, id string, cmd UpdateEstimateCommand) (entities.Estimate, error) {
	e, err := u.load(ctx, tenantID, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	customerID, addressID := e.CustomerID, e.AddressID
	if cmd.CustomerID != nil {
		customerID = strings.TrimSpace(*cmd.CustomerID)
		if customerID == "" {
			return entities.Estimate{}, ErrInvalidCustomerID
		}
	}
	if cmd.AddressID != nil {
		addressID = strings.TrimSpace(*cmd.AddressID)
		if addressID == "" {
			return entities.Estimate{}, ErrInvalidAddressID
		}
	}
	if customerID != e.CustomerID || addressID != e.AddressID {
		if _, _, err := u.resolveParties(ctx, e.TenantID, customerID, addressID); err != nil {
			return entities.Estimate{}, err
		}
		e.CustomerID, e.AddressID = customerID, addressID
	}

	if cmd.Title != nil {
		e.Title = *cmd.Title
	}
	if cmd.Message != nil {
		e.Message = *cmd.Message
	}
	if cmd.TermsAndConditions != nil {
		e.TermsAndConditions = *cmd.TermsAndConditions
	}
	if cmd.ValidUntil != nil {
		e.ValidUntil = cmd.ValidUntil
	}

	now := u.now()
	if cmd.Status != nil {
		if !cmd.Status.Valid() {
			return entities.Estimate{}, fmt.Errorf("%w: %s", ErrInvalidStatus, *cmd.Status)
		}
		e.StampStatus(*cmd.Status, now)
	}

	replaceOptions := false
	switch {
	case cmd.Options != nil:
		taxRate := firstOptionTaxRate(e)
		if cmd.TaxRate != nil {
			taxRate = *cmd.TaxRate
		}
		if taxRate.IsNegative() {
			return entities.Estimate{}, ErrNegativeAmount
		}
		options, err := buildOptions(e.ID, *cmd.Options, taxRate)
		if err != nil {
			return entities.Estimate{}, err
		}
		e.Options = options
		replaceOptions = true
	case cmd.TaxRate != nil:
		if cmd.TaxRate.IsNegative() {
			return entities.Estimate{}, ErrNegativeAmount
		}
		for i := range e.Options {
			e.Options[i].TaxRate = *cmd.TaxRate
		}
		replaceOptions = true
	}

	e.SortOptions()
	pricing.PriceEstimate(&e)
	e.UpdatedAt = now

	updated, err := u.repo.Update(ctx, e, replaceOptions)
	if err != nil {
		u.logger.Error("update estimate failed", zap.String("tenant_id", e.TenantID), zap.String("estimate_id", e.ID), zap.Error(err))
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	u.attachParties(ctx, []*entities.Estimate{&updated})
	u.logger.Info("estimate updated",
		zap.String("tenant_id", updated.TenantID),
		zap.String("estimate_id", updated.ID),
		zap.String("status", string(updated.Status)),
		zap.Bool("options_replaced", replaceOptions),
	)
	return updated, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, tenantID, id string) error {
	e, err := u.load(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, e.TenantID, e.ID); err != nil {
		var refErr *interfaces.EstimateReferencedError
		if errors.As(err, &refErr) {
			return &EstimateInUseError{Jobs: refErr.Jobs, ServiceRequests: refErr.ServiceRequests}
		}
		u.logger.Error("delete estimate failed", zap.String("tenant_id", e.TenantID), zap.String("estimate_id", e.ID), zap.Error(err))
		return err
	}
	u.logger.Info("estimate deleted", zap.String("tenant_id", e.TenantID), zap.String("estimate_id", e.ID))
	return nil
}

func (u *EstimateUseCase) Send(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	return u.updateStatus(ctx, tenantID, id, entities.EstimateStatusSent)
}

func (u *EstimateUseCase) MarkViewed(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	return u.updateStatus(ctx, tenantID, id, entities.EstimateStatusViewed)
}

func (u *EstimateUseCase) Approve(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	return u.updateStatus(ctx, tenantID, id, entities.EstimateStatusApproved)
}

func (u *EstimateUseCase) Decline(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	return u.updateStatus(ctx, tenantID, id, entities.EstimateStatusDeclined)
}

func (u *EstimateUseCase) updateStatus(ctx context.Context, tenantID, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	return u.Update(ctx, tenantID, id, UpdateEstimateCommand{Status: &status})
}

func (u *EstimateUseCase) ExpireOverdue(ctx context.Context) (int, error) {
	now := u.now()
	overdue, err := u.repo.ListExpirable(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	var errs []error
	for _, e := range overdue {
		e.StampStatus(entities.EstimateStatusExpired, now)
		e.UpdatedAt = now
		updated, err := u.repo.Update(ctx, e, false)
		if err != nil {
			u.logger.Warn("expire estimate failed", zap.String("tenant_id", e.TenantID), zap.String("estimate_id", e.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		if updated.ID == "" {
			u.logger.Debug("estimate gone before expiry", zap.String("tenant_id", e.TenantID), zap.String("estimate_id", e.ID))
			continue
		}
		expired++
	}
	if expired > 0 {
		u.logger.Info("estimates expired", zap.Int("count", expired))
	}
	return expired, errors.Join(errs...)
}

func (u *EstimateUseCase) load(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Estimate{}, ErrInvalidTenantID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// resolveParties checks that the customer and address exist in the tenant
// and that the address belongs to the customer.
func (u *EstimateUseCase) resolveParties(ctx context.Context, tenantID, customerID, addressID string) (entities.Customer, entities.Address, error) {
	customer, err := u.customers.GetCustomer(ctx, tenantID, customerID)
	if err != nil {
		return entities.Customer{}, entities.Address{}, err
	}
	if customer.ID == "" {
		return entities.Customer{}, entities.Address{}, ErrCustomerNotFound
	}
	address, err := u.customers.GetAddress(ctx, tenantID, addressID)
	if err != nil {
		return entities.Customer{}, entities.Address{}, err
	}
	if address.ID == "" || address.CustomerID != customer.ID {
		return entities.Customer{}, entities.Address{}, ErrAddressNotFound
	}
	return customer, address, nil
}

// attachParties fills the customer and address summaries. Lookup failures
// leave the summaries empty.
func (u *EstimateUseCase) attachParties(ctx context.Context, estimates []*entities.Estimate) {
	customers := map[string]*entities.Customer{}
	addresses := map[string]*entities.Address{}
	for _, e := range estimates {
		c, ok := customers[e.CustomerID]
		if !ok {
			if found, err := u.customers.GetCustomer(ctx, e.TenantID, e.CustomerID); err == nil && found.ID != "" {
				c = &found
			} else if err != nil {
				u.logger.Warn("load customer summary failed", zap.String("customer_id", e.CustomerID), zap.Error(err))
			}
			customers[e.CustomerID] = c
		}
		a, ok := addresses[e.AddressID]
		if !ok {
			if found, err := u.customers.GetAddress(ctx, e.TenantID, e.AddressID); err == nil && found.ID != "" {
				a = &found
			} else if err != nil {
				u.logger.Warn("load address summary failed", zap.String("address_id", e.AddressID), zap.Error(err))
			}
			addresses[e.AddressID] = a
		}
		e.Customer = c
		e.Address = a
	}
}

func firstOptionTaxRate(e entities.Estimate) decimal.Decimal {
	if len(e.Options) == 0 {
		return decimal.Zero
	}
	return e.Options[0].TaxRate
}
