package repository

import (
	"context"
	"fmt"

	"github.com/homeconnect/backend/internal/pkg/models"
)

// ListServices returns the service catalog ordered by name
func (r *MarketplaceRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	query := `SELECT id, name, description FROM services ORDER BY name`

	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}
