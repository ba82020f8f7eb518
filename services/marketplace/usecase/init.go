package usecase

import (
	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/marketplace"
)

// MarketplaceUC implements the marketplace usecase
type MarketplaceUC struct {
	cfg             *models.Config
	marketplaceRepo marketplace.MarketplaceRepo
	logger          *logger.ZapLogger
}

// NewMarketplaceUC creates a new marketplace usecase
func NewMarketplaceUC(cfg *models.Config, repo marketplace.MarketplaceRepo, log *logger.ZapLogger) *MarketplaceUC {
	return &MarketplaceUC{
		cfg:             cfg,
		marketplaceRepo: repo,
		logger:          log,
	}
}
