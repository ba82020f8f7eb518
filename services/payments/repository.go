package payments

import (
	"context"

	"github.com/google/uuid"

	"github.com/homeconnect/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/homeconnect/backend/services/payments PaymentRepo

// PaymentRepo defines the interface for payment repository operations
type PaymentRepo interface {
	// CreatePaymentRequest persists a new payment request in PENDING
	CreatePaymentRequest(ctx context.Context, pr *models.PaymentRequest) error

	// MarkSent stores the gateway correlation id and moves the request to
	// SENT. The correlation id is written at most once.
	MarkSent(ctx context.Context, id uuid.UUID, checkoutRequestID string) error

	// MarkFailed moves the request to FAILED
	MarkFailed(ctx context.Context, id uuid.UUID) error

	// GetPaymentRequestByID retrieves a payment request by id
	GetPaymentRequestByID(ctx context.Context, id uuid.UUID) (*models.PaymentRequest, error)

	// GetPaymentRequestByCheckoutID retrieves a payment request by its
	// gateway correlation id
	GetPaymentRequestByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.PaymentRequest, error)

	// FinalizeFromSent transitions a request from SENT to the given
	// terminal status. Returns false when the request was not in SENT,
	// so a late or duplicate callback cannot overwrite a terminal state.
	FinalizeFromSent(ctx context.Context, id uuid.UUID, status models.PaymentStatus) (bool, error)

	// CreateTransaction appends one callback audit record. Returns
	// ErrDuplicateTransaction when the external transaction id exists.
	CreateTransaction(ctx context.Context, txn *models.MpesaTransaction) error

	// ReserveTransactionID claims an external transaction id for
	// processing. Returns false when the id was already claimed.
	ReserveTransactionID(ctx context.Context, mpesaTransactionID string) (bool, error)

	// ReleaseTransactionID gives back a claim so a retried delivery can
	// be processed after a failed attempt
	ReleaseTransactionID(ctx context.Context, mpesaTransactionID string) error
}
