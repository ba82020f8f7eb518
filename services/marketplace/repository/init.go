package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/homeconnect/backend/internal/pkg/database"
	"github.com/homeconnect/backend/internal/pkg/models"
)

// Redis key of the provider geospatial index
const providerGeoKey = "marketplace:providers:geo"

// MarketplaceRepository handles marketplace persistence
type MarketplaceRepository struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMarketplaceRepository creates a new marketplace repository
func NewMarketplaceRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *MarketplaceRepository {
	return &MarketplaceRepository{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
