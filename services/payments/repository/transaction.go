package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/payments"
)

const (
	pgUniqueViolation = "23505"

	// transactions are deduplicated in Redis for a day; the database
	// unique constraint backstops anything older
	txnDedupKeyPrefix = "payments:txn:"
	txnDedupTTL       = 24 * time.Hour
)

// CreateTransaction appends one callback audit record. Returns
// payments.ErrDuplicateTransaction when the external transaction id exists.
func (r *PaymentRepository) CreateTransaction(ctx context.Context, txn *models.MpesaTransaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	txn.CreatedAt = time.Now()

	query := `
		INSERT INTO mpesa_transactions (id, payment_request_id, mpesa_transaction_id, amount, result_code, result_desc, raw_payload, created_at)
		VALUES (:id, :payment_request_id, :mpesa_transaction_id, :amount, :result_code, :result_desc, :raw_payload, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, txn); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return payments.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to create mpesa transaction: %w", err)
	}
	return nil
}

// ReserveTransactionID claims an external transaction id for processing.
// Returns false when the id was already claimed.
func (r *PaymentRepository) ReserveTransactionID(ctx context.Context, mpesaTransactionID string) (bool, error) {
	key := txnDedupKeyPrefix + mpesaTransactionID
	ok, err := r.redisClient.SetNX(ctx, key, time.Now().Unix(), txnDedupTTL)
	if err != nil {
		return false, fmt.Errorf("failed to reserve transaction id: %w", err)
	}
	return ok, nil
}

// ReleaseTransactionID drops a claim taken by ReserveTransactionID. Used
// when processing fails after the claim, so the gateway's retry is not
// swallowed as a duplicate.
func (r *PaymentRepository) ReleaseTransactionID(ctx context.Context, mpesaTransactionID string) error {
	if err := r.redisClient.Delete(ctx, txnDedupKeyPrefix+mpesaTransactionID); err != nil {
		return fmt.Errorf("failed to release transaction id: %w", err)
	}
	return nil
}
