package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/internal/utils"
	"github.com/homeconnect/backend/services/marketplace"
)

// GetProfile returns a user with their provider profile when present
func (uc *MarketplaceUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.marketplaceRepo.GetUserByID(ctx, userID)
}

// UpdateProviderProfile updates a provider's profile, recomputes the geohash
// cell and refreshes their entry in the location index
func (uc *MarketplaceUC) UpdateProviderProfile(ctx context.Context, userID uuid.UUID, profile *models.ProviderProfile) error {
	user, err := uc.marketplaceRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleProvider {
		return marketplace.ErrNotAllowed
	}

	if !utils.ValidCoordinates(profile.Latitude, profile.Longitude) {
		return fmt.Errorf("%w: invalid coordinates", marketplace.ErrInvalidInput)
	}

	profile.UserID = userID
	profile.Geohash = utils.EncodeLocation(profile.Latitude, profile.Longitude, uc.cfg.Search.GeohashPrecision)

	if err := uc.marketplaceRepo.UpsertProviderProfile(ctx, profile); err != nil {
		return err
	}

	if err := uc.marketplaceRepo.IndexProviderLocation(ctx, userID, profile.Latitude, profile.Longitude); err != nil {
		// The profile is saved; the index entry refreshes on the next update
		uc.logger.Warn("Failed to refresh provider location index",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err))
	}

	uc.logger.Info("Provider profile updated",
		logger.String("user_id", userID.String()),
		logger.String("geohash", profile.Geohash))

	return nil
}

// FindNearbyProviders returns providers within radiusKm of the point,
// nearest first, enriched with their company names
func (uc *MarketplaceUC) FindNearbyProviders(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyProvider, error) {
	if !utils.ValidCoordinates(latitude, longitude) {
		return nil, fmt.Errorf("%w: invalid coordinates", marketplace.ErrInvalidInput)
	}
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Search.RadiusKm
	}

	results, err := uc.marketplaceRepo.SearchNearbyProviders(ctx, latitude, longitude, radiusKm)
	if err != nil {
		return nil, err
	}

	for i := range results {
		profile, err := uc.marketplaceRepo.GetProviderProfile(ctx, results[i].UserID)
		if err != nil {
			if errors.Is(err, marketplace.ErrProviderNotFound) {
				continue
			}
			return nil, err
		}
		results[i].CompanyName = profile.CompanyName
	}

	return results, nil
}

// ListServices returns the service catalog
func (uc *MarketplaceUC) ListServices(ctx context.Context) ([]models.Service, error) {
	return uc.marketplaceRepo.ListServices(ctx)
}
