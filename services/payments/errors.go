package payments

import "errors"

var (
	// ErrInvalidInput indicates the initiation request failed validation;
	// no payment request record is created in this case
	ErrInvalidInput = errors.New("invalid payment input")

	// ErrGatewayRejected indicates the gateway rejected the push or the
	// call failed; the payment request is retained in FAILED
	ErrGatewayRejected = errors.New("payment gateway rejected the request")

	// ErrPaymentRequestNotFound indicates no payment request matched the
	// given id or correlation id for the caller
	ErrPaymentRequestNotFound = errors.New("payment request not found")

	// ErrDuplicateTransaction indicates a callback carried an external
	// transaction id that was already recorded
	ErrDuplicateTransaction = errors.New("duplicate mpesa transaction")
)
