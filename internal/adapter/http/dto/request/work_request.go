package request

import (
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r CreateCustomerRequest) ToEntity(tenantID string) entities.Customer {
	return entities.Customer{
		TenantID: tenantID,
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
	}
}

type CreateAddressRequest struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

func (r CreateAddressRequest) ToEntity(tenantID, customerID string) entities.Address {
	return entities.Address{
		TenantID:   tenantID,
		CustomerID: customerID,
		Street:     strings.TrimSpace(r.Street),
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
	}
}

type CreateJobRequest struct {
	CustomerID  string     `json:"customerId" binding:"required"`
	EstimateID  *string    `json:"estimateId"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

func (r CreateJobRequest) ToEntity(tenantID string) entities.Job {
	return entities.Job{
		TenantID:    tenantID,
		CustomerID:  strings.TrimSpace(r.CustomerID),
		EstimateID:  r.EstimateID,
		Title:       r.Title,
		Status:      entities.JobStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		ScheduledAt: r.ScheduledAt,
	}
}

type CreateServiceRequestRequest struct {
	CustomerID  string  `json:"customerId" binding:"required"`
	EstimateID  *string `json:"estimateId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

func (r CreateServiceRequestRequest) ToEntity(tenantID string) entities.ServiceRequest {
	return entities.ServiceRequest{
		TenantID:    tenantID,
		CustomerID:  strings.TrimSpace(r.CustomerID),
		EstimateID:  r.EstimateID,
		Title:       r.Title,
		Description: r.Description,
		Status:      entities.ServiceRequestStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}
}

// LinkEstimateRequest links work to an estimate; a null estimateId unlinks.
type LinkEstimateRequest struct {
	EstimateID *string `json:"estimateId"`
}
