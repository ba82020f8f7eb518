package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/internal/utils"
	"github.com/homeconnect/backend/services/payments"
)

// InitiatePayment validates the request, persists it in PENDING, then asks
// the gateway to start a push prompt. The request moves to SENT only after
// the gateway accepted the push; any rejection or timeout leaves it FAILED.
func (uc *PaymentUC) InitiatePayment(ctx context.Context, userID uuid.UUID, req *models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", payments.ErrInvalidInput)
	}

	valid, msisdn, err := utils.ValidateMSISDN(req.PhoneNumber)
	if !valid || err != nil {
		return nil, fmt.Errorf("%w: %v", payments.ErrInvalidInput, err)
	}

	pr := &models.PaymentRequest{
		UserID:      userID,
		Amount:      req.Amount,
		PhoneNumber: msisdn,
	}
	if err := uc.paymentRepo.CreatePaymentRequest(ctx, pr); err != nil {
		return nil, err
	}

	uc.logger.Info("Payment request created",
		logger.String("request_id", pr.ID.String()),
		logger.String("user_id", userID.String()),
		logger.Int64("amount", req.Amount))

	// The outbound call is bounded so a slow gateway cannot hold the
	// request open indefinitely.
	gwCtx, cancel := context.WithTimeout(ctx, time.Duration(uc.cfg.Mpesa.TimeoutSeconds)*time.Second)
	defer cancel()

	pushResp, err := uc.paymentGW.StkPush(gwCtx, &models.StkPushRequest{
		PhoneNumber:      msisdn,
		Amount:           req.Amount,
		AccountReference: pr.ID.String(),
		Description:      "HomeConnect service payment",
		CallbackURL:      uc.cfg.Mpesa.CallbackURL,
	})
	if err != nil || pushResp.ResponseCode != "0" {
		if err != nil {
			uc.logger.Warn("STK push failed",
				logger.String("request_id", pr.ID.String()),
				logger.ErrorField(err))
		} else {
			uc.logger.Warn("STK push rejected by gateway",
				logger.String("request_id", pr.ID.String()),
				logger.String("response_code", pushResp.ResponseCode),
				logger.String("response_desc", pushResp.ResponseDescription))
		}

		if markErr := uc.paymentRepo.MarkFailed(ctx, pr.ID); markErr != nil {
			uc.logger.Error("Failed to mark payment request failed",
				logger.String("request_id", pr.ID.String()),
				logger.ErrorField(markErr))
		}

		return &models.InitiatePaymentResponse{
			RequestID: pr.ID,
			Status:    models.PaymentStatusFailed,
		}, payments.ErrGatewayRejected
	}

	if err := uc.paymentRepo.MarkSent(ctx, pr.ID, pushResp.CheckoutRequestID); err != nil {
		return nil, err
	}

	uc.logger.Info("Payment request sent",
		logger.String("request_id", pr.ID.String()),
		logger.String("checkout_request_id", pushResp.CheckoutRequestID))

	return &models.InitiatePaymentResponse{
		RequestID:         pr.ID,
		Status:            models.PaymentStatusSent,
		CheckoutRequestID: pushResp.CheckoutRequestID,
	}, nil
}
