package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/payments"
)

// HandleCallback records a gateway notification and finalizes the matching
// payment request. Every callback leaves exactly one audit record; a
// duplicate external transaction id is acknowledged without reprocessing,
// and a callback matching no request is recorded with a null reference.
func (uc *PaymentUC) HandleCallback(ctx context.Context, event *models.CallbackEvent) (*models.CallbackAck, error) {
	claimed := false
	reserved, err := uc.paymentRepo.ReserveTransactionID(ctx, event.MpesaTransactionID)
	if err != nil {
		// Redis being down must not drop callbacks; the unique
		// constraint on the audit table still catches duplicates.
		uc.logger.Warn("Transaction id reservation failed, relying on database constraint",
			logger.String("mpesa_transaction_id", event.MpesaTransactionID),
			logger.ErrorField(err))
	} else if !reserved {
		uc.logger.Info("Duplicate callback ignored",
			logger.String("mpesa_transaction_id", event.MpesaTransactionID))
		return &models.CallbackAck{
			Received:      true,
			TransactionID: event.MpesaTransactionID,
			Matched:       true,
			Duplicate:     true,
		}, nil
	} else {
		claimed = true
	}

	// A claim held through a failed attempt would make the gateway's
	// retry look like a duplicate; give it back before erroring out
	fail := func(err error) (*models.CallbackAck, error) {
		if claimed {
			if relErr := uc.paymentRepo.ReleaseTransactionID(ctx, event.MpesaTransactionID); relErr != nil {
				uc.logger.Warn("Failed to release transaction id claim",
					logger.String("mpesa_transaction_id", event.MpesaTransactionID),
					logger.ErrorField(relErr))
			}
		}
		return nil, err
	}

	var pr *models.PaymentRequest
	if event.CheckoutRequestID != "" {
		pr, err = uc.paymentRepo.GetPaymentRequestByCheckoutID(ctx, event.CheckoutRequestID)
		if err != nil && !errors.Is(err, payments.ErrPaymentRequestNotFound) {
			return fail(err)
		}
	}

	txn := &models.MpesaTransaction{
		MpesaTransactionID: event.MpesaTransactionID,
		Amount:             event.Amount,
		ResultCode:         event.ResultCode,
		ResultDesc:         event.ResultDesc,
		RawPayload:         event.RawPayload,
	}
	if pr != nil {
		txn.PaymentRequestID = &pr.ID
	}

	// The row may already exist when a previous delivery failed after the
	// insert; the finalize below is still attempted so a retry can move
	// the request out of SENT instead of being swallowed.
	duplicate := false
	if err := uc.paymentRepo.CreateTransaction(ctx, txn); err != nil {
		if !errors.Is(err, payments.ErrDuplicateTransaction) {
			return fail(err)
		}
		duplicate = true
	}

	if pr == nil {
		if duplicate {
			return &models.CallbackAck{
				Received:      true,
				TransactionID: event.MpesaTransactionID,
				Matched:       true,
				Duplicate:     true,
			}, nil
		}
		// The audit record is kept but the gateway is told nothing matched
		uc.logger.Warn("Callback matched no payment request",
			logger.String("checkout_request_id", event.CheckoutRequestID),
			logger.String("mpesa_transaction_id", event.MpesaTransactionID))
		return &models.CallbackAck{
			Received:      true,
			TransactionID: event.MpesaTransactionID,
		}, nil
	}

	status := models.PaymentStatusFailed
	if event.ResultCode == 0 {
		status = models.PaymentStatusCompleted
	}

	finalized, err := uc.paymentRepo.FinalizeFromSent(ctx, pr.ID, status)
	if err != nil {
		return fail(err)
	}
	if !finalized {
		if !duplicate {
			uc.logger.Warn("Payment request not in SENT, leaving status unchanged",
				logger.String("request_id", pr.ID.String()),
				logger.String("current_status", string(pr.Status)))
		}
		return &models.CallbackAck{
			Received:      true,
			TransactionID: event.MpesaTransactionID,
			Matched:       true,
			Duplicate:     duplicate,
		}, nil
	}

	uc.logger.Info("Payment request finalized",
		logger.String("request_id", pr.ID.String()),
		logger.String("status", string(status)),
		logger.String("mpesa_transaction_id", event.MpesaTransactionID))

	if err := uc.paymentGW.PublishPaymentEvent(ctx, &models.PaymentEvent{
		RequestID:          pr.ID,
		UserID:             pr.UserID,
		MpesaTransactionID: event.MpesaTransactionID,
		Amount:             event.Amount,
		Status:             status,
		Timestamp:          time.Now(),
	}); err != nil {
		// The callback is already durable; the event is best effort
		uc.logger.Error("Failed to publish payment event",
			logger.String("request_id", pr.ID.String()),
			logger.ErrorField(err))
	}

	return &models.CallbackAck{
		Received:      true,
		TransactionID: event.MpesaTransactionID,
		Matched:       true,
		Duplicate:     duplicate,
	}, nil
}
