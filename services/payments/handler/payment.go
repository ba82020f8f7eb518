package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homeconnect/backend/internal/pkg/middleware"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/internal/utils"
	"github.com/homeconnect/backend/services/payments"
)

// InitiatePayment handles POST /payments
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.paymentUC.InitiatePayment(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, payments.ErrGatewayRejected):
			return c.JSON(http.StatusBadGateway, utils.Response{
				Success: false,
				Error:   "Payment gateway rejected the request",
				Data:    resp,
			})
		default:
			return utils.InternalServerErrorResponse(c, "Failed to initiate payment")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment initiated", resp)
}

// GetPaymentStatus handles GET /payments/:id
func (h *PaymentHandler) GetPaymentStatus(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment request id")
	}

	resp, err := h.paymentUC.GetPaymentStatus(c.Request().Context(), userID, requestID)
	if err != nil {
		if errors.Is(err, payments.ErrPaymentRequestNotFound) {
			return utils.NotFoundResponse(c, "Payment request not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status", resp)
}
