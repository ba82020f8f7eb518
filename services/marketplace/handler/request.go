package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homeconnect/backend/internal/pkg/middleware"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/internal/utils"
	"github.com/homeconnect/backend/services/marketplace"
)

// CreateServiceRequest handles POST /requests
func (h *MarketplaceHandler) CreateServiceRequest(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if middleware.RoleFromContext(c) != models.RoleHomeowner {
		return utils.ForbiddenResponse(c, "Only homeowners can open service requests")
	}

	var req models.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	sr, err := h.marketplaceUC.CreateServiceRequest(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, marketplace.ErrInvalidInput):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrProviderNotFound):
			return utils.NotFoundResponse(c, "Provider not found")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to create service request")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Service request created", sr)
}

// ListServiceRequests handles GET /requests
func (h *MarketplaceHandler) ListServiceRequests(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	requests, err := h.marketplaceUC.ListServiceRequests(c.Request().Context(), userID, middleware.RoleFromContext(c))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list service requests")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service requests", requests)
}

// UpdateServiceRequest handles PUT /requests/:id
func (h *MarketplaceHandler) UpdateServiceRequest(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid service request id")
	}

	var req models.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	sr, err := h.marketplaceUC.UpdateServiceRequest(c.Request().Context(), userID, requestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, marketplace.ErrInvalidInput):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrServiceRequestNotFound):
			return utils.NotFoundResponse(c, "Service request not found")
		case errors.Is(err, marketplace.ErrNotAllowed):
			return utils.ForbiddenResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrInvalidTransition):
			return utils.ConflictResponse(c, "Only pending requests can be edited")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to update service request")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service request updated", sr)
}

// DeleteServiceRequest handles DELETE /requests/:id
func (h *MarketplaceHandler) DeleteServiceRequest(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid service request id")
	}

	if err := h.marketplaceUC.DeleteServiceRequest(c.Request().Context(), userID, requestID); err != nil {
		switch {
		case errors.Is(err, marketplace.ErrServiceRequestNotFound):
			return utils.NotFoundResponse(c, "Service request not found")
		case errors.Is(err, marketplace.ErrNotAllowed):
			return utils.ForbiddenResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrInvalidTransition):
			return utils.ConflictResponse(c, "Only pending requests can be deleted")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to delete service request")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service request deleted", nil)
}

// AcceptServiceRequest handles POST /requests/:id/accept
func (h *MarketplaceHandler) AcceptServiceRequest(c echo.Context) error {
	return h.transition(c, h.marketplaceUC.AcceptServiceRequest, "Service request accepted")
}

// CompleteServiceRequest handles POST /requests/:id/complete
func (h *MarketplaceHandler) CompleteServiceRequest(c echo.Context) error {
	return h.transition(c, h.marketplaceUC.CompleteServiceRequest, "Service request completed")
}

// CancelServiceRequest handles POST /requests/:id/cancel
func (h *MarketplaceHandler) CancelServiceRequest(c echo.Context) error {
	return h.transition(c, h.marketplaceUC.CancelServiceRequest, "Service request cancelled")
}

func (h *MarketplaceHandler) transition(c echo.Context, apply func(ctx context.Context, userID, requestID uuid.UUID) error, message string) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid service request id")
	}

	if err := apply(c.Request().Context(), userID, requestID); err != nil {
		switch {
		case errors.Is(err, marketplace.ErrServiceRequestNotFound):
			return utils.NotFoundResponse(c, "Service request not found")
		case errors.Is(err, marketplace.ErrNotAllowed):
			return utils.ForbiddenResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrInvalidTransition):
			return utils.ConflictResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to update service request")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}
