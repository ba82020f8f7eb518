package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homeconnect/backend/internal/pkg/middleware"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/marketplace"
)

// MarketplaceHandler handles HTTP requests for the marketplace service
type MarketplaceHandler struct {
	cfg           *models.Config
	marketplaceUC marketplace.MarketplaceUC
}

// NewMarketplaceHandler creates a new marketplace handler
func NewMarketplaceHandler(cfg *models.Config, uc marketplace.MarketplaceUC) *MarketplaceHandler {
	return &MarketplaceHandler{
		cfg:           cfg,
		marketplaceUC: uc,
	}
}

// RegisterRoutes registers the marketplace routes
func (h *MarketplaceHandler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	authed := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	authed.GET("/providers/me", h.GetMyProfile)
	authed.PUT("/providers/me", h.UpdateProviderProfile)
	authed.GET("/providers/nearby", h.FindNearbyProviders)
	authed.GET("/providers/:id", h.GetProvider)

	authed.GET("/services", h.ListServices)

	authed.POST("/requests", h.CreateServiceRequest)
	authed.GET("/requests", h.ListServiceRequests)
	authed.PUT("/requests/:id", h.UpdateServiceRequest)
	authed.DELETE("/requests/:id", h.DeleteServiceRequest)
	authed.POST("/requests/:id/accept", h.AcceptServiceRequest)
	authed.POST("/requests/:id/complete", h.CompleteServiceRequest)
	authed.POST("/requests/:id/cancel", h.CancelServiceRequest)

	authed.GET("/notifications", h.ListNotifications)
	authed.DELETE("/users/me", h.DeactivateAccount)
}
