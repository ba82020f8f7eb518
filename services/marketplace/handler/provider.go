package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homeconnect/backend/internal/pkg/middleware"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/internal/utils"
	"github.com/homeconnect/backend/services/marketplace"
)

// GetMyProfile handles GET /providers/me
func (h *MarketplaceHandler) GetMyProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.marketplaceUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, marketplace.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile", user)
}

// UpdateProviderProfile handles PUT /providers/me
func (h *MarketplaceHandler) UpdateProviderProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if middleware.RoleFromContext(c) != models.RoleProvider {
		return utils.ForbiddenResponse(c, "Only providers can update a provider profile")
	}

	var profile models.ProviderProfile
	if err := c.Bind(&profile); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	err := h.marketplaceUC.UpdateProviderProfile(c.Request().Context(), userID, &profile)
	if err != nil {
		switch {
		case errors.Is(err, marketplace.ErrInvalidInput):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrNotAllowed):
			return utils.ForbiddenResponse(c, "Only providers can update a provider profile")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to update profile")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", profile)
}

// GetProvider handles GET /providers/:id
func (h *MarketplaceHandler) GetProvider(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid provider id")
	}

	user, err := h.marketplaceUC.GetProfile(c.Request().Context(), providerID)
	if err != nil {
		if errors.Is(err, marketplace.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "Provider not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get provider")
	}
	if user.Role != models.RoleProvider {
		return utils.NotFoundResponse(c, "Provider not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Provider", user)
}

// FindNearbyProviders handles GET /providers/nearby
func (h *MarketplaceHandler) FindNearbyProviders(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lon is required")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "radius_km must be a number")
		}
	}

	results, err := h.marketplaceUC.FindNearbyProviders(c.Request().Context(), lat, lon, radiusKm)
	if err != nil {
		if errors.Is(err, marketplace.ErrInvalidInput) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to search providers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby providers", results)
}

// ListServices handles GET /services
func (h *MarketplaceHandler) ListServices(c echo.Context) error {
	services, err := h.marketplaceUC.ListServices(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list services")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Services", services)
}
