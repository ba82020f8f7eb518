package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MpesaTransaction is an append-only audit record of a gateway callback.
// The payment request reference is null when the callback's correlation id
// matched nothing; the external transaction id is unique across all rows.
type MpesaTransaction struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	PaymentRequestID   *uuid.UUID      `json:"payment_request_id,omitempty" db:"payment_request_id"`
	MpesaTransactionID string          `json:"mpesa_transaction_id" db:"mpesa_transaction_id"`
	Amount             int64           `json:"amount" db:"amount"`
	ResultCode         int             `json:"result_code" db:"result_code"`
	ResultDesc         string          `json:"result_desc" db:"result_desc"`
	RawPayload         json.RawMessage `json:"raw_payload" db:"raw_payload"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
}
