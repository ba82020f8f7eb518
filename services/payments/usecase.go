package payments

import (
	"context"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/homeconnect/backend/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// InitiatePayment creates a payment request and asks the gateway to
	// start a push-payment prompt on the user's phone
	InitiatePayment(ctx context.Context, userID uuid.UUID, req *models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error)

	// HandleCallback processes an asynchronous gateway notification
	HandleCallback(ctx context.Context, event *models.CallbackEvent) (*models.CallbackAck, error)

	// GetPaymentStatus returns the status of a payment request owned by
	// the given user
	GetPaymentStatus(ctx context.Context, userID, requestID uuid.UUID) (*models.PaymentStatusResponse, error)
}
