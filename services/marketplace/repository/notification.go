package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/models"
)

// CreateNotification persists a notification
func (r *MarketplaceRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.CreatedAt = time.Now()

	query := `
		INSERT INTO notifications (id, user_id, kind, message, created_at)
		VALUES (:id, :user_id, :kind, :message, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListNotificationsByUser returns the user's notifications, newest first
func (r *MarketplaceRepository) ListNotificationsByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	query := `
		SELECT id, user_id, kind, message, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}
