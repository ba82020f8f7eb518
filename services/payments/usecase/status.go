package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/payments"
)

// GetPaymentStatus returns the status of a payment request owned by the
// given user. Requests belonging to other users are reported as not found.
func (uc *PaymentUC) GetPaymentStatus(ctx context.Context, userID, requestID uuid.UUID) (*models.PaymentStatusResponse, error) {
	pr, err := uc.paymentRepo.GetPaymentRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if pr.UserID != userID {
		return nil, payments.ErrPaymentRequestNotFound
	}

	return &models.PaymentStatusResponse{
		RequestID: pr.ID,
		Status:    pr.Status,
		UpdatedAt: pr.UpdatedAt,
	}, nil
}
