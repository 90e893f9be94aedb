package response

import (
	"time"

	"fieldservice/internal/domain/entities"
)

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AddressResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Street     string    `json:"street"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"state,omitempty"`
	PostalCode string    `json:"postalCode,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type JobResponse struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customerId"`
	EstimateID  *string    `json:"estimateId"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ServiceRequestResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	EstimateID  *string   `json:"estimateId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		CreatedAt:  a.CreatedAt,
	}
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		CustomerID:  j.CustomerID,
		EstimateID:  j.EstimateID,
		Title:       j.Title,
		Status:      string(j.Status),
		ScheduledAt: j.ScheduledAt,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func FromServiceRequest(sr entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:          sr.ID,
		CustomerID:  sr.CustomerID,
		EstimateID:  sr.EstimateID,
		Title:       sr.Title,
		Description: sr.Description,
		Status:      string(sr.Status),
		CreatedAt:   sr.CreatedAt,
		UpdatedAt:   sr.UpdatedAt,
	}
}
