package gateway

import (
	"github.com/homeconnect/backend/internal/pkg/http"
	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/internal/pkg/nsq"
)

// PaymentGW handles outbound calls to the M-Pesa gateway and publishes
// payment lifecycle events
type PaymentGW struct {
	cfg      *models.Config
	client   *http.EnhancedClient
	producer *nsq.Producer
	logger   *logger.ZapLogger
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(cfg *models.Config, client *http.EnhancedClient, producer *nsq.Producer, log *logger.ZapLogger) *PaymentGW {
	return &PaymentGW{
		cfg:      cfg,
		client:   client,
		producer: producer,
		logger:   log,
	}
}
