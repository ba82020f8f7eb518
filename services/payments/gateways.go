package payments

import (
	"context"

	"github.com/homeconnect/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/homeconnect/backend/services/payments PaymentGW

// PaymentGW defines the payment gateways interface
type PaymentGW interface {
	// StkPush asks the M-Pesa gateway to start a customer-facing payment
	// prompt and returns the correlation id for later matching
	StkPush(ctx context.Context, req *models.StkPushRequest) (*models.StkPushResponse, error)

	// PublishPaymentEvent publishes a terminal payment lifecycle event
	PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error
}
