package marketplace

import (
	"context"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/homeconnect/backend/services/marketplace MarketplaceUC

// MarketplaceUC represents the marketplace usecase interface
type MarketplaceUC interface {
	// Register creates a new user and returns an auth token
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)

	// Login authenticates a user by MSISDN and password
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// GetProfile returns a user with their provider profile when present
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// UpdateProviderProfile updates a provider's profile and refreshes
	// their entry in the location index
	UpdateProviderProfile(ctx context.Context, userID uuid.UUID, profile *models.ProviderProfile) error

	// FindNearbyProviders returns providers within radiusKm of the point
	FindNearbyProviders(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyProvider, error)

	// ListServices returns the service catalog
	ListServices(ctx context.Context) ([]models.Service, error)

	// CreateServiceRequest creates a pending request from a homeowner to
	// a provider
	CreateServiceRequest(ctx context.Context, homeownerID uuid.UUID, req *models.CreateServiceRequest) (*models.ServiceRequest, error)

	// ListServiceRequests returns the requests the user participates in,
	// scoped by their role
	ListServiceRequests(ctx context.Context, userID uuid.UUID, role string) ([]models.ServiceRequest, error)

	// AcceptServiceRequest moves a pending request to accepted; only the
	// assigned provider may accept
	AcceptServiceRequest(ctx context.Context, providerID, requestID uuid.UUID) error

	// CompleteServiceRequest moves an accepted request to completed; only
	// the assigned provider may complete
	CompleteServiceRequest(ctx context.Context, providerID, requestID uuid.UUID) error

	// CancelServiceRequest cancels a pending or accepted request; only
	// the homeowner who opened it may cancel
	CancelServiceRequest(ctx context.Context, homeownerID, requestID uuid.UUID) error

	// UpdateServiceRequest edits a request that is still pending; only
	// the homeowner who opened it may edit
	UpdateServiceRequest(ctx context.Context, homeownerID, requestID uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceRequest, error)

	// DeleteServiceRequest removes a request that is still pending; only
	// the homeowner who opened it may delete
	DeleteServiceRequest(ctx context.Context, homeownerID, requestID uuid.UUID) error

	// DeactivateAccount marks the caller's account inactive, ending
	// their ability to sign in
	DeactivateAccount(ctx context.Context, userID uuid.UUID) error

	// ListNotifications returns the user's notifications, newest first
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)

	// HandlePaymentEvent turns a payment lifecycle event into a
	// notification for the paying user
	HandlePaymentEvent(ctx context.Context, event *models.PaymentEvent) error
}
