package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/marketplace"
)

// CreateServiceRequest persists a new pending service request
func (r *MarketplaceRepository) CreateServiceRequest(ctx context.Context, sr *models.ServiceRequest) error {
	if sr.ID == uuid.Nil {
		sr.ID = uuid.New()
	}
	now := time.Now()
	sr.Status = models.RequestStatusPending
	sr.CreatedAt = now
	sr.UpdatedAt = now

	query := `
		INSERT INTO service_requests (id, homeowner_id, provider_id, service_id, details, status, created_at, updated_at)
		VALUES (:id, :homeowner_id, :provider_id, :service_id, :details, :status, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, sr); err != nil {
		return fmt.Errorf("failed to create service request: %w", err)
	}
	return nil
}

// GetServiceRequestByID retrieves a service request by id
func (r *MarketplaceRepository) GetServiceRequestByID(ctx context.Context, id uuid.UUID) (*models.ServiceRequest, error) {
	var sr models.ServiceRequest
	query := `
		SELECT id, homeowner_id, provider_id, service_id, details, status, created_at, updated_at
		FROM service_requests
		WHERE id = $1`

	err := r.db.GetContext(ctx, &sr, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, marketplace.ErrServiceRequestNotFound
		}
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}
	return &sr, nil
}

// ListServiceRequestsByHomeowner returns requests opened by the user, newest
// first
func (r *MarketplaceRepository) ListServiceRequestsByHomeowner(ctx context.Context, homeownerID uuid.UUID) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	query := `
		SELECT id, homeowner_id, provider_id, service_id, details, status, created_at, updated_at
		FROM service_requests
		WHERE homeowner_id = $1
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &requests, query, homeownerID); err != nil {
		return nil, fmt.Errorf("failed to list service requests by homeowner: %w", err)
	}
	return requests, nil
}

// ListServiceRequestsByProvider returns requests assigned to the user, newest
// first
func (r *MarketplaceRepository) ListServiceRequestsByProvider(ctx context.Context, providerID uuid.UUID) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	query := `
		SELECT id, homeowner_id, provider_id, service_id, details, status, created_at, updated_at
		FROM service_requests
		WHERE provider_id = $1
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &requests, query, providerID); err != nil {
		return nil, fmt.Errorf("failed to list service requests by provider: %w", err)
	}
	return requests, nil
}

// UpdateServiceRequestDetails rewrites the details and service of a request
// that is still pending. Returns false when the request was no longer
// pending.
func (r *MarketplaceRepository) UpdateServiceRequestDetails(ctx context.Context, id uuid.UUID, serviceID *uuid.UUID, details string) (bool, error) {
	query := `
		UPDATE service_requests
		SET details = $1, service_id = $2, updated_at = $3
		WHERE id = $4 AND status = $5`

	result, err := r.db.ExecContext(ctx, query, details, serviceID, time.Now(), id, models.RequestStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update service request details: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// DeleteServiceRequest removes a request that is still pending. Returns
// false when the request had already moved on.
func (r *MarketplaceRepository) DeleteServiceRequest(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM service_requests WHERE id = $1 AND status = $2`

	result, err := r.db.ExecContext(ctx, query, id, models.RequestStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to delete service request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// UpdateServiceRequestStatus transitions a request from one status to
// another. Returns false when the row was no longer in the expected status.
func (r *MarketplaceRepository) UpdateServiceRequestStatus(ctx context.Context, id uuid.UUID, from, to models.RequestStatus) (bool, error) {
	query := `
		UPDATE service_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4`

	result, err := r.db.ExecContext(ctx, query, to, time.Now(), id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update service request status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
