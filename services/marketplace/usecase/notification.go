package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
)

// ListNotifications returns the user's notifications, newest first
func (uc *MarketplaceUC) ListNotifications(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	return uc.marketplaceRepo.ListNotificationsByUser(ctx, userID)
}

// HandlePaymentEvent turns a payment lifecycle event into a notification for
// the paying user
func (uc *MarketplaceUC) HandlePaymentEvent(ctx context.Context, event *models.PaymentEvent) error {
	kind := models.NotificationPaymentFailed
	message := fmt.Sprintf("Your payment of KES %d could not be completed.", event.Amount)
	if event.Status == models.PaymentStatusCompleted {
		kind = models.NotificationPaymentCompleted
		message = fmt.Sprintf("Your payment of KES %d was received. Receipt: %s.", event.Amount, event.MpesaTransactionID)
	}

	n := &models.Notification{
		UserID:  event.UserID,
		Kind:    kind,
		Message: message,
	}
	if err := uc.marketplaceRepo.CreateNotification(ctx, n); err != nil {
		return err
	}

	uc.logger.Info("Payment notification created",
		logger.String("user_id", event.UserID.String()),
		logger.String("kind", kind),
		logger.String("request_id", event.RequestID.String()))

	return nil
}
