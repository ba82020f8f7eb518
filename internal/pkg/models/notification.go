package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification kinds
const (
	NotificationPaymentCompleted = "payment_completed"
	NotificationPaymentFailed    = "payment_failed"
)

// Notification is a message shown to a user, fed by payment lifecycle events
type Notification struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Kind      string    `json:"kind" db:"kind"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
