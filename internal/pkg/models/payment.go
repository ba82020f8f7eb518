package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the lifecycle state of a payment request
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusSent      PaymentStatus = "SENT"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// PaymentRequest represents a single push-payment attempt by a user.
// The checkout request ID is assigned at most once, only after the gateway
// accepted the push. Rows are never deleted.
type PaymentRequest struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	UserID            uuid.UUID     `json:"user_id" db:"user_id"`
	Amount            int64         `json:"amount" db:"amount"`
	PhoneNumber       string        `json:"phone_number" db:"phone_number"`
	Status            PaymentStatus `json:"status" db:"status"`
	CheckoutRequestID *string       `json:"checkout_request_id,omitempty" db:"checkout_request_id"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" db:"updated_at"`
}

// InitiatePaymentRequest is the request body for starting a push payment
type InitiatePaymentRequest struct {
	PhoneNumber string `json:"phone_number"`
	Amount      int64  `json:"amount"`
}

// InitiatePaymentResponse is returned to the user after an initiation attempt
type InitiatePaymentResponse struct {
	RequestID         uuid.UUID     `json:"request_id"`
	Status            PaymentStatus `json:"status"`
	CheckoutRequestID string        `json:"checkout_request_id,omitempty"`
}

// PaymentStatusResponse is the response to a status query
type PaymentStatusResponse struct {
	RequestID uuid.UUID     `json:"request_id"`
	Status    PaymentStatus `json:"status"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// StkPushRequest is the outbound request to the gateway to start a
// customer-facing payment prompt
type StkPushRequest struct {
	PhoneNumber      string `json:"phone_number"`
	Amount           int64  `json:"amount"`
	AccountReference string `json:"account_reference"`
	Description      string `json:"description"`
	CallbackURL      string `json:"callback_url"`
}

// StkPushResponse is the gateway's synchronous answer to an STK push request
type StkPushResponse struct {
	CheckoutRequestID   string `json:"checkout_request_id"`
	ResponseCode        string `json:"response_code"`
	ResponseDescription string `json:"response_description"`
}

// CallbackEvent is the normalized form of a gateway callback payload.
// Gateways send the same logical fields under different key names; the
// handler normalizes them into this type before any business logic runs.
type CallbackEvent struct {
	CheckoutRequestID  string          `json:"checkout_request_id"`
	MpesaTransactionID string          `json:"mpesa_transaction_id"`
	Amount             int64           `json:"amount"`
	ResultCode         int             `json:"result_code"`
	ResultDesc         string          `json:"result_desc"`
	RawPayload         json.RawMessage `json:"raw_payload"`
}

// CallbackAck is the acknowledgement returned to the gateway
type CallbackAck struct {
	Received      bool   `json:"received"`
	TransactionID string `json:"transaction_id"`
	Matched       bool   `json:"matched"`
	Duplicate     bool   `json:"duplicate,omitempty"`
}

// PaymentEvent is published to NSQ when a payment request reaches a
// terminal state
type PaymentEvent struct {
	RequestID          uuid.UUID     `json:"request_id"`
	UserID             uuid.UUID     `json:"user_id"`
	MpesaTransactionID string        `json:"mpesa_transaction_id"`
	Amount             int64         `json:"amount"`
	Status             PaymentStatus `json:"status"`
	Timestamp          time.Time     `json:"timestamp"`
}

// NSQ topics for payment lifecycle events
const (
	TopicPaymentCompleted = "payment.completed"
	TopicPaymentFailed    = "payment.failed"
)
