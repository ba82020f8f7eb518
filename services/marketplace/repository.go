package marketplace

import (
	"context"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/homeconnect/backend/services/marketplace MarketplaceRepo

// MarketplaceRepo defines the interface for marketplace repository operations
type MarketplaceRepo interface {
	// CreateUser persists a new user. Returns ErrUserExists when the
	// MSISDN is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByMSISDN retrieves a user by phone number
	GetUserByMSISDN(ctx context.Context, msisdn string) (*models.User, error)

	// GetUserByID retrieves a user by id, including the provider profile
	// for provider users
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// UpsertProviderProfile creates or replaces a provider profile
	UpsertProviderProfile(ctx context.Context, profile *models.ProviderProfile) error

	// GetProviderProfile retrieves a provider profile by user id
	GetProviderProfile(ctx context.Context, userID uuid.UUID) (*models.ProviderProfile, error)

	// IndexProviderLocation stores the provider's position in the
	// geospatial index
	IndexProviderLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error

	// SearchNearbyProviders returns provider ids with distance and
	// coordinates within radiusKm of the point, nearest first
	SearchNearbyProviders(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyProvider, error)

	// ListServices returns the service catalog
	ListServices(ctx context.Context) ([]models.Service, error)

	// CreateServiceRequest persists a new pending service request
	CreateServiceRequest(ctx context.Context, sr *models.ServiceRequest) error

	// GetServiceRequestByID retrieves a service request by id
	GetServiceRequestByID(ctx context.Context, id uuid.UUID) (*models.ServiceRequest, error)

	// ListServiceRequestsByHomeowner returns requests opened by the user
	ListServiceRequestsByHomeowner(ctx context.Context, homeownerID uuid.UUID) ([]models.ServiceRequest, error)

	// ListServiceRequestsByProvider returns requests assigned to the user
	ListServiceRequestsByProvider(ctx context.Context, providerID uuid.UUID) ([]models.ServiceRequest, error)

	// UpdateServiceRequestStatus transitions a request from one status to
	// another. Returns false when the request was no longer in the
	// expected status.
	UpdateServiceRequestStatus(ctx context.Context, id uuid.UUID, from, to models.RequestStatus) (bool, error)

	// UpdateServiceRequestDetails rewrites the details and service of a
	// request that is still pending. Returns false when the request was
	// no longer pending.
	UpdateServiceRequestDetails(ctx context.Context, id uuid.UUID, serviceID *uuid.UUID, details string) (bool, error)

	// DeleteServiceRequest removes a request that is still pending.
	// Returns false when the request had already moved on.
	DeleteServiceRequest(ctx context.Context, id uuid.UUID) (bool, error)

	// DeactivateUser marks a user inactive
	DeactivateUser(ctx context.Context, id uuid.UUID) error

	// CreateNotification persists a notification
	CreateNotification(ctx context.Context, n *models.Notification) error

	// ListNotificationsByUser returns the user's notifications, newest
	// first
	ListNotificationsByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
}
