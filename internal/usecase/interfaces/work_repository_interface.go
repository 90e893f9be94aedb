package interfaces

import (
	"context"

	"fieldservice/internal/domain/entities"
)

// IWorkRepository abstracts persistence for jobs and service requests.
// Lookups return zero values when nothing matches the tenant. Writes that set
// an estimate link fail with ErrLinkedEstimateMissing when the estimate was
// deleted first.
type IWorkRepository interface {
	CreateJob(ctx context.Context, j entities.Job) (entities.Job, error)
	GetJob(ctx context.Context, tenantID, id string) (entities.Job, error)
	ListJobs(ctx context.Context, tenantID string) ([]entities.Job, error)
	// SetJobEstimate links the job to estimateID, or unlinks it when nil.
	SetJobEstimate(ctx context.Context, tenantID, id string, estimateID *string) (entities.Job, error)
	DeleteJob(ctx context.Context, tenantID, id string) error

	CreateServiceRequest(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error)
	GetServiceRequest(ctx context.Context, tenantID, id string) (entities.ServiceRequest, error)
	ListServiceRequests(ctx context.Context, tenantID string) ([]entities.ServiceRequest, error)
	SetServiceRequestEstimate(ctx context.Context, tenantID, id string, estimateID *string) (entities.ServiceRequest, error)
	DeleteServiceRequest(ctx context.Context, tenantID, id string) error
}
