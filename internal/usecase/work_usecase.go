package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IWorkUseCase manages jobs and service requests, the records that can hold
// a reference to an estimate.
type IWorkUseCase interface {
	CreateJob(ctx context.Context, j entities.Job) (entities.Job, error)
	GetJob(ctx context.Context, tenantID, id string) (entities.Job, error)
	ListJobs(ctx context.Context, tenantID string) ([]entities.Job, error)
	LinkJobEstimate(ctx context.Context, tenantID, id string, estimateID *string) (entities.Job, error)
	DeleteJob(ctx context.Context, tenantID, id string) error

	CreateServiceRequest(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error)
	GetServiceRequest(ctx context.Context, tenantID, id string) (entities.ServiceRequest, error)
	ListServiceRequests(ctx context.Context, tenantID string) ([]entities.ServiceRequest, error)
	LinkServiceRequestEstimate(ctx context.Context, tenantID, id string, estimateID *string) (entities.ServiceRequest, error)
	DeleteServiceRequest(ctx context.Context, tenantID, id string) error
}

type WorkUseCase struct {
	repo      interfaces.IWorkRepository
	customers interfaces.ICustomerRepository
	estimates interfaces.IEstimateRepository
	logger    *zap.Logger
	now       func() time.Time
}

var _ IWorkUseCase = (*WorkUseCase)(nil)

func NewWorkUseCase(repo interfaces.IWorkRepository, customers interfaces.ICustomerRepository, estimates interfaces.IEstimateRepository, logger *zap.Logger) *WorkUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkUseCase{
		repo:      repo,
		customers: customers,
		estimates: estimates,
		logger:    logger.Named("work"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *WorkUseCase) CreateJob(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.TenantID = strings.TrimSpace(j.TenantID)
	if j.TenantID == "" {
		return entities.Job{}, ErrInvalidTenantID
	}
	j.Title = strings.TrimSpace(j.Title)
	if j.Title == "" {
		return entities.Job{}, ErrInvalidName
	}
	if err := u.checkCustomer(ctx, j.TenantID, j.CustomerID); err != nil {
		return entities.Job{}, err
	}
	estimateID, err := u.checkEstimate(ctx, j.TenantID, j.EstimateID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.Status == "" {
		j.Status = entities.JobStatusScheduled
	}
	j.ID = uuid.NewString()
	j.EstimateID = estimateID
	j.CreatedAt = u.now()
	j.UpdatedAt = j.CreatedAt

	created, err := u.repo.CreateJob(ctx, j)
	if err != nil {
		return entities.Job{}, linkError(err)
	}
	u.logger.Info("job created", zap.String("tenant_id", created.TenantID), zap.String("job_id", created.ID))
	return created, nil
}

func (u *WorkUseCase) GetJob(ctx context.Context, tenantID, id string) (entities.Job, error) {
	tenantID, id, err := trimIDs(tenantID, id)
	if err != nil {
		return entities.Job{}, err
	}
	j, err := u.repo.GetJob(ctx, tenantID, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *WorkUseCase) ListJobs(ctx context.Context, tenantID string) ([]entities.Job, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListJobs(ctx, tenantID)
}

// LinkJobEstimate points the job at estimateID, or clears the link when
// estimateID is nil.
func (u *WorkUseCase) LinkJobEstimate(ctx context.Context, tenantID, id string, estimateID *string) (entities.Job, error) {
	j, err := u.GetJob(ctx, tenantID, id)
	if err != nil {
		return entities.Job{}, err
	}
	estimateID, err = u.checkEstimate(ctx, j.TenantID, estimateID)
	if err != nil {
		return entities.Job{}, err
	}
	updated, err := u.repo.SetJobEstimate(ctx, j.TenantID, j.ID, estimateID)
	if err != nil {
		return entities.Job{}, linkError(err)
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

func (u *WorkUseCase) DeleteJob(ctx context.Context, tenantID, id string) error {
	j, err := u.GetJob(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return u.repo.DeleteJob(ctx, j.TenantID, j.ID)
}

func (u *WorkUseCase) CreateServiceRequest(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	sr.TenantID = strings.TrimSpace(sr.TenantID)
	if sr.TenantID == "" {
		return entities.ServiceRequest{}, ErrInvalidTenantID
	}
	sr.Title = strings.TrimSpace(sr.Title)
	if sr.Title == "" {
		return entities.ServiceRequest{}, ErrInvalidName
	}
	if err := u.checkCustomer(ctx, sr.TenantID, sr.CustomerID); err != nil {
		return entities.ServiceRequest{}, err
	}
	estimateID, err := u.checkEstimate(ctx, sr.TenantID, sr.EstimateID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.Status == "" {
		sr.Status = entities.ServiceRequestStatusNew
	}
	sr.ID = uuid.NewString()
	sr.EstimateID = estimateID
	sr.CreatedAt = u.now()
	sr.UpdatedAt = sr.CreatedAt

	created, err := u.repo.CreateServiceRequest(ctx, sr)
	if err != nil {
		return entities.ServiceRequest{}, linkError(err)
	}
	u.logger.Info("service request created", zap.String("tenant_id", created.TenantID), zap.String("service_request_id", created.ID))
	return created, nil
}

func (u *WorkUseCase) GetServiceRequest(ctx context.Context, tenantID, id string) (entities.ServiceRequest, error) {
	tenantID, id, err := trimIDs(tenantID, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	sr, err := u.repo.GetServiceRequest(ctx, tenantID, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	return sr, nil
}

func (u *WorkUseCase) ListServiceRequests(ctx context.Context, tenantID string) ([]entities.ServiceRequest, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListServiceRequests(ctx, tenantID)
}

func (u *WorkUseCase) LinkServiceRequestEstimate(ctx context.Context, tenantID, id string, estimateID *string) (entities.ServiceRequest, error) {
	sr, err := u.GetServiceRequest(ctx, tenantID, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	estimateID, err = u.checkEstimate(ctx, sr.TenantID, estimateID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	updated, err := u.repo.SetServiceRequestEstimate(ctx, sr.TenantID, sr.ID, estimateID)
	if err != nil {
		return entities.ServiceRequest{}, linkError(err)
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	return updated, nil
}

func (u *WorkUseCase) DeleteServiceRequest(ctx context.Context, tenantID, id string) error {
	sr, err := u.GetServiceRequest(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return u.repo.DeleteServiceRequest(ctx, sr.TenantID, sr.ID)
}

func (u *WorkUseCase) checkCustomer(ctx context.Context, tenantID, customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return ErrInvalidCustomerID
	}
	c, err := u.customers.GetCustomer(ctx, tenantID, customerID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCustomerNotFound
	}
	return nil
}

// checkEstimate treats nil and blank ids as no link.
func (u *WorkUseCase) checkEstimate(ctx context.Context, tenantID string, estimateID *string) (*string, error) {
	if estimateID == nil {
		return nil, nil
	}
	id := strings.TrimSpace(*estimateID)
	if id == "" {
		return nil, nil
	}
	e, err := u.estimates.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if e.ID == "" {
		return nil, ErrEstimateNotFound
	}
	return &id, nil
}

// linkError maps an estimate deleted between checkEstimate and the write.
func linkError(err error) error {
	if errors.Is(err, interfaces.ErrLinkedEstimateMissing) {
		return ErrEstimateNotFound
	}
	return err
}

func trimIDs(tenantID, id string) (string, string, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return "", "", ErrInvalidTenantID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "", ErrInvalidID
	}
	return tenantID, id, nil
}
