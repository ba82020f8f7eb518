package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/marketplace"
)

// CreateServiceRequest creates a pending request from a homeowner to a
// provider
func (uc *MarketplaceUC) CreateServiceRequest(ctx context.Context, homeownerID uuid.UUID, req *models.CreateServiceRequest) (*models.ServiceRequest, error) {
	if req.Details == "" {
		return nil, fmt.Errorf("%w: details are required", marketplace.ErrInvalidInput)
	}

	provider, err := uc.marketplaceRepo.GetUserByID(ctx, req.ProviderID)
	if err != nil {
		return nil, marketplace.ErrProviderNotFound
	}
	if provider.Role != models.RoleProvider {
		return nil, marketplace.ErrProviderNotFound
	}

	sr := &models.ServiceRequest{
		HomeownerID: homeownerID,
		ProviderID:  req.ProviderID,
		ServiceID:   req.ServiceID,
		Details:     req.Details,
	}
	if err := uc.marketplaceRepo.CreateServiceRequest(ctx, sr); err != nil {
		return nil, err
	}

	uc.logger.Info("Service request created",
		logger.String("request_id", sr.ID.String()),
		logger.String("homeowner_id", homeownerID.String()),
		logger.String("provider_id", req.ProviderID.String()))

	return sr, nil
}

// ListServiceRequests returns the requests the user participates in, scoped
// by their role
func (uc *MarketplaceUC) ListServiceRequests(ctx context.Context, userID uuid.UUID, role string) ([]models.ServiceRequest, error) {
	if role == models.RoleProvider {
		return uc.marketplaceRepo.ListServiceRequestsByProvider(ctx, userID)
	}
	return uc.marketplaceRepo.ListServiceRequestsByHomeowner(ctx, userID)
}

// AcceptServiceRequest moves a pending request to accepted; only the
// assigned provider may accept
func (uc *MarketplaceUC) AcceptServiceRequest(ctx context.Context, providerID, requestID uuid.UUID) error {
	sr, err := uc.marketplaceRepo.GetServiceRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if sr.ProviderID != providerID {
		return marketplace.ErrNotAllowed
	}
	if sr.Status != models.RequestStatusPending {
		return marketplace.ErrInvalidTransition
	}

	return uc.transition(ctx, requestID, models.RequestStatusPending, models.RequestStatusAccepted)
}

// CompleteServiceRequest moves an accepted request to completed; only the
// assigned provider may complete
func (uc *MarketplaceUC) CompleteServiceRequest(ctx context.Context, providerID, requestID uuid.UUID) error {
	sr, err := uc.marketplaceRepo.GetServiceRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if sr.ProviderID != providerID {
		return marketplace.ErrNotAllowed
	}
	if sr.Status != models.RequestStatusAccepted {
		return marketplace.ErrInvalidTransition
	}

	return uc.transition(ctx, requestID, models.RequestStatusAccepted, models.RequestStatusCompleted)
}

// CancelServiceRequest cancels a pending or accepted request; only the
// homeowner who opened it may cancel
func (uc *MarketplaceUC) CancelServiceRequest(ctx context.Context, homeownerID, requestID uuid.UUID) error {
	sr, err := uc.marketplaceRepo.GetServiceRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if sr.HomeownerID != homeownerID {
		return marketplace.ErrNotAllowed
	}
	if sr.Status != models.RequestStatusPending && sr.Status != models.RequestStatusAccepted {
		return marketplace.ErrInvalidTransition
	}

	return uc.transition(ctx, requestID, sr.Status, models.RequestStatusCancelled)
}

// UpdateServiceRequest edits a pending request; only the homeowner who
// opened it may edit, and only while the provider has not acted on it
func (uc *MarketplaceUC) UpdateServiceRequest(ctx context.Context, homeownerID, requestID uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceRequest, error) {
	if req.Details == "" {
		return nil, fmt.Errorf("%w: details are required", marketplace.ErrInvalidInput)
	}

	sr, err := uc.marketplaceRepo.GetServiceRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if sr.HomeownerID != homeownerID {
		return nil, marketplace.ErrNotAllowed
	}
	if sr.Status != models.RequestStatusPending {
		return nil, marketplace.ErrInvalidTransition
	}

	updated, err := uc.marketplaceRepo.UpdateServiceRequestDetails(ctx, requestID, req.ServiceID, req.Details)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, marketplace.ErrInvalidTransition
	}

	sr.Details = req.Details
	sr.ServiceID = req.ServiceID

	uc.logger.Info("Service request updated",
		logger.String("request_id", requestID.String()),
		logger.String("homeowner_id", homeownerID.String()))

	return sr, nil
}

// DeleteServiceRequest removes a pending request; only the homeowner who
// opened it may delete. Accepted work is cancelled, not deleted.
func (uc *MarketplaceUC) DeleteServiceRequest(ctx context.Context, homeownerID, requestID uuid.UUID) error {
	sr, err := uc.marketplaceRepo.GetServiceRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if sr.HomeownerID != homeownerID {
		return marketplace.ErrNotAllowed
	}
	if sr.Status != models.RequestStatusPending {
		return marketplace.ErrInvalidTransition
	}

	deleted, err := uc.marketplaceRepo.DeleteServiceRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !deleted {
		return marketplace.ErrInvalidTransition
	}

	uc.logger.Info("Service request deleted",
		logger.String("request_id", requestID.String()),
		logger.String("homeowner_id", homeownerID.String()))

	return nil
}

// transition applies a guarded status change; a concurrent change between
// the read and the update surfaces as ErrInvalidTransition
func (uc *MarketplaceUC) transition(ctx context.Context, requestID uuid.UUID, from, to models.RequestStatus) error {
	updated, err := uc.marketplaceRepo.UpdateServiceRequestStatus(ctx, requestID, from, to)
	if err != nil {
		return err
	}
	if !updated {
		return marketplace.ErrInvalidTransition
	}

	uc.logger.Info("Service request transitioned",
		logger.String("request_id", requestID.String()),
		logger.String("from", string(from)),
		logger.String("to", string(to)))

	return nil
}
