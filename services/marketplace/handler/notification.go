package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeconnect/backend/internal/pkg/middleware"
	"github.com/homeconnect/backend/internal/utils"
)

// ListNotifications handles GET /notifications
func (h *MarketplaceHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	notifications, err := h.marketplaceUC.ListNotifications(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list notifications")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications", notifications)
}
