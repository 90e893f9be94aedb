package entities

import "time"

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "SCHEDULED"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

type ServiceRequestStatus string

const (
	ServiceRequestStatusNew       ServiceRequestStatus = "NEW"
	ServiceRequestStatusQuoted    ServiceRequestStatus = "QUOTED"
	ServiceRequestStatusConverted ServiceRequestStatus = "CONVERTED"
	ServiceRequestStatusClosed    ServiceRequestStatus = "CLOSED"
)

// Job is scheduled field work. A job referencing an estimate blocks the
// estimate's deletion.
type Job struct {
	ID          string
	TenantID    string
	CustomerID  string
	EstimateID  *string
	Title       string
	Status      JobStatus
	ScheduledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceRequest is an inbound customer request. Like Job, a reference to an
// estimate blocks the estimate's deletion.
type ServiceRequest struct {
	ID          string
	TenantID    string
	CustomerID  string
	EstimateID  *string
	Title       string
	Description string
	Status      ServiceRequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
