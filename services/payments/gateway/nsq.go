package gateway

import (
	"context"

	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
)

// PublishPaymentEvent publishes a terminal payment lifecycle event to NSQ
func (g *PaymentGW) PublishPaymentEvent(_ context.Context, event *models.PaymentEvent) error {
	topic := models.TopicPaymentFailed
	if event.Status == models.PaymentStatusCompleted {
		topic = models.TopicPaymentCompleted
	}

	g.logger.Info("Publishing payment event",
		logger.String("topic", topic),
		logger.String("request_id", event.RequestID.String()),
		logger.String("status", string(event.Status)))

	return g.producer.Publish(topic, event)
}
