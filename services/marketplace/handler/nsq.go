package handler

import (
	"context"
	"fmt"

	"github.com/homeconnect/backend/internal/pkg/models"
	nsqpkg "github.com/homeconnect/backend/internal/pkg/nsq"
	"github.com/homeconnect/backend/services/marketplace"
)

// PaymentEventConsumer subscribes to payment lifecycle topics and feeds
// them into the marketplace usecase
type PaymentEventConsumer struct {
	cfg           *models.Config
	marketplaceUC marketplace.MarketplaceUC
	consumers     []*nsqpkg.Consumer
}

// NewPaymentEventConsumer creates a new payment event consumer
func NewPaymentEventConsumer(cfg *models.Config, uc marketplace.MarketplaceUC) *PaymentEventConsumer {
	return &PaymentEventConsumer{
		cfg:           cfg,
		marketplaceUC: uc,
	}
}

// Start connects consumers for the completed and failed payment topics
func (pc *PaymentEventConsumer) Start() error {
	topics := []string{models.TopicPaymentCompleted, models.TopicPaymentFailed}

	for _, topic := range topics {
		consumer, err := nsqpkg.NewConsumer(topic, pc.cfg.NSQ.Channel, pc.cfg.NSQ.NSQDAddress, pc.handleMessage)
		if err != nil {
			return fmt.Errorf("failed to start consumer for %s: %w", topic, err)
		}
		pc.consumers = append(pc.consumers, consumer)
	}
	return nil
}

func (pc *PaymentEventConsumer) handleMessage(body []byte) error {
	var event models.PaymentEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		return err
	}
	return pc.marketplaceUC.HandlePaymentEvent(context.Background(), &event)
}

// Stop stops all consumers
func (pc *PaymentEventConsumer) Stop() {
	for _, consumer := range pc.consumers {
		consumer.Stop()
	}
}
