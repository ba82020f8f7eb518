package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeconnect/backend/internal/pkg/middleware"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/internal/utils"
	"github.com/homeconnect/backend/services/marketplace"
)

// Register handles POST /auth/register
func (h *MarketplaceHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.marketplaceUC.Register(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, marketplace.ErrInvalidInput):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrUserExists):
			return utils.ConflictResponse(c, "A user with this phone number already exists")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to register user")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered", resp)
}

// Login handles POST /auth/login
func (h *MarketplaceHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.marketplaceUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, marketplace.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid phone number or password")
		}
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", resp)
}

// DeactivateAccount handles DELETE /users/me
func (h *MarketplaceHandler) DeactivateAccount(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.marketplaceUC.DeactivateAccount(c.Request().Context(), userID); err != nil {
		if errors.Is(err, marketplace.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to deactivate account")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account deactivated", nil)
}
