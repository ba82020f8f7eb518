package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is one entry of the service catalog (plumbing, electrical, ...)
type Service struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
}

// RequestStatus represents the lifecycle state of a service request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// ServiceRequest represents a homeowner's request for work from a provider
type ServiceRequest struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	HomeownerID uuid.UUID     `json:"homeowner_id" db:"homeowner_id"`
	ProviderID  uuid.UUID     `json:"provider_id" db:"provider_id"`
	ServiceID   *uuid.UUID    `json:"service_id,omitempty" db:"service_id"`
	Details     string        `json:"details" db:"details"`
	Status      RequestStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateServiceRequest is the request body for creating a service request
type CreateServiceRequest struct {
	ProviderID uuid.UUID  `json:"provider_id"`
	ServiceID  *uuid.UUID `json:"service_id,omitempty"`
	Details    string     `json:"details"`
}

// UpdateServiceRequest is the request body for editing a pending service
// request
type UpdateServiceRequest struct {
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
	Details   string     `json:"details"`
}
