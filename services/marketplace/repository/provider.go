package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/marketplace"
)

// UpsertProviderProfile creates or replaces a provider profile
func (r *MarketplaceRepository) UpsertProviderProfile(ctx context.Context, profile *models.ProviderProfile) error {
	query := `
		INSERT INTO provider_profiles (user_id, company_name, skills, experience_years, latitude, longitude, geohash)
		VALUES (:user_id, :company_name, :skills, :experience_years, :latitude, :longitude, :geohash)
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			skills = EXCLUDED.skills,
			experience_years = EXCLUDED.experience_years,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			geohash = EXCLUDED.geohash`

	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("failed to upsert provider profile: %w", err)
	}
	return nil
}

// GetProviderProfile retrieves a provider profile by user id
func (r *MarketplaceRepository) GetProviderProfile(ctx context.Context, userID uuid.UUID) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	query := `
		SELECT user_id, company_name, skills, experience_years, latitude, longitude, geohash
		FROM provider_profiles
		WHERE user_id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, marketplace.ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to get provider profile: %w", err)
	}
	return &profile, nil
}

// IndexProviderLocation stores the provider's position in the Redis GEO index
func (r *MarketplaceRepository) IndexProviderLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error {
	if err := r.redisClient.GeoAdd(ctx, providerGeoKey, longitude, latitude, userID.String()); err != nil {
		return fmt.Errorf("failed to index provider location: %w", err)
	}
	return nil
}

// SearchNearbyProviders returns provider ids within radiusKm of the point,
// nearest first
func (r *MarketplaceRepository) SearchNearbyProviders(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyProvider, error) {
	locations, err := r.redisClient.GeoRadius(ctx, providerGeoKey, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby providers: %w", err)
	}

	results := make([]models.NearbyProvider, 0, len(locations))
	for _, loc := range locations {
		userID, err := uuid.Parse(loc.Name)
		if err != nil {
			// Stale or foreign member in the index, skip it
			continue
		}
		results = append(results, models.NearbyProvider{
			UserID:     userID,
			DistanceKm: loc.Dist,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
		})
	}
	return results, nil
}
