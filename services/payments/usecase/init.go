package usecase

import (
	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/payments"
)

// PaymentUC implements the payment usecase
type PaymentUC struct {
	cfg         *models.Config
	paymentRepo payments.PaymentRepo
	paymentGW   payments.PaymentGW
	logger      *logger.ZapLogger
}

// NewPaymentUC creates a new payment usecase
func NewPaymentUC(cfg *models.Config, repo payments.PaymentRepo, gw payments.PaymentGW, log *logger.ZapLogger) *PaymentUC {
	return &PaymentUC{
		cfg:         cfg,
		paymentRepo: repo,
		paymentGW:   gw,
		logger:      log,
	}
}
