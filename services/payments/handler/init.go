package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homeconnect/backend/internal/pkg/middleware"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/payments"
)

// PaymentHandler handles HTTP requests for the payments service
type PaymentHandler struct {
	cfg       *models.Config
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(cfg *models.Config, uc payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		cfg:       cfg,
		paymentUC: uc,
	}
}

// RegisterRoutes registers the payment routes
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	// Gateway callbacks authenticate with a shared secret, not a user token
	e.POST("/payments/callback", h.HandleCallback, middleware.ValidateCallbackSecret(h.cfg.Mpesa.CallbackSecret))

	group := e.Group("/payments", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.POST("", h.InitiatePayment)
	group.GET("/:id", h.GetPaymentStatus)
}
