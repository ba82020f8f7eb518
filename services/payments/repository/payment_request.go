package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/payments"
)

// CreatePaymentRequest persists a new payment request in PENDING
func (r *PaymentRepository) CreatePaymentRequest(ctx context.Context, pr *models.PaymentRequest) error {
	if pr.ID == uuid.Nil {
		pr.ID = uuid.New()
	}
	now := time.Now()
	pr.Status = models.PaymentStatusPending
	pr.CreatedAt = now
	pr.UpdatedAt = now

	query := `
		INSERT INTO payment_requests (id, user_id, amount, phone_number, status, created_at, updated_at)
		VALUES (:id, :user_id, :amount, :phone_number, :status, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, pr); err != nil {
		return fmt.Errorf("failed to create payment request: %w", err)
	}
	return nil
}

// MarkSent stores the gateway correlation id and moves the request to SENT.
// The guard on checkout_request_id keeps the id write-once.
func (r *PaymentRepository) MarkSent(ctx context.Context, id uuid.UUID, checkoutRequestID string) error {
	query := `
		UPDATE payment_requests
		SET status = $1, checkout_request_id = $2, updated_at = $3
		WHERE id = $4 AND checkout_request_id IS NULL`

	result, err := r.db.ExecContext(ctx, query, models.PaymentStatusSent, checkoutRequestID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark payment request sent: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("payment request %s already has a checkout request id", id)
	}
	return nil
}

// MarkFailed moves the request to FAILED
func (r *PaymentRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE payment_requests SET status = $1, updated_at = $2 WHERE id = $3`

	if _, err := r.db.ExecContext(ctx, query, models.PaymentStatusFailed, time.Now(), id); err != nil {
		return fmt.Errorf("failed to mark payment request failed: %w", err)
	}
	return nil
}

// GetPaymentRequestByID retrieves a payment request by id
func (r *PaymentRepository) GetPaymentRequestByID(ctx context.Context, id uuid.UUID) (*models.PaymentRequest, error) {
	var pr models.PaymentRequest
	query := `
		SELECT id, user_id, amount, phone_number, status, checkout_request_id, created_at, updated_at
		FROM payment_requests
		WHERE id = $1`

	err := r.db.GetContext(ctx, &pr, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrPaymentRequestNotFound
		}
		return nil, fmt.Errorf("failed to get payment request: %w", err)
	}
	return &pr, nil
}

// GetPaymentRequestByCheckoutID retrieves a payment request by its gateway
// correlation id
func (r *PaymentRepository) GetPaymentRequestByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.PaymentRequest, error) {
	var pr models.PaymentRequest
	query := `
		SELECT id, user_id, amount, phone_number, status, checkout_request_id, created_at, updated_at
		FROM payment_requests
		WHERE checkout_request_id = $1`

	err := r.db.GetContext(ctx, &pr, query, checkoutRequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrPaymentRequestNotFound
		}
		return nil, fmt.Errorf("failed to get payment request by checkout id: %w", err)
	}
	return &pr, nil
}

// FinalizeFromSent transitions a request from SENT to the given terminal
// status. Returns false when the row was not in SENT.
func (r *PaymentRepository) FinalizeFromSent(ctx context.Context, id uuid.UUID, status models.PaymentStatus) (bool, error) {
	query := `
		UPDATE payment_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id, models.PaymentStatusSent)
	if err != nil {
		return false, fmt.Errorf("failed to finalize payment request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
