package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/internal/utils"
)

// HandleCallback handles POST /payments/callback
func (h *PaymentHandler) HandleCallback(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read callback body")
	}

	event, err := normalizeCallback(body)
	if err != nil {
		return utils.BadRequestResponse(c, "Malformed callback payload")
	}

	ack, err := h.paymentUC.HandleCallback(c.Request().Context(), event)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to process callback")
	}

	// The audit record exists either way, but an unmatched correlation id
	// is reported back to the gateway as not found
	if !ack.Matched {
		return utils.NotFoundResponse(c, "No matching payment request")
	}

	return c.JSON(http.StatusOK, ack)
}

// normalizeCallback maps the gateway's loosely keyed payload into a typed
// event. The gateway sends the same logical fields under CamelCase or
// snake_case keys, and numeric fields sometimes arrive as strings.
func normalizeCallback(body []byte) (*models.CallbackEvent, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid callback json: %w", err)
	}

	checkoutID := stringField(payload, "CheckoutRequestID", "checkout_request_id")
	receipt := stringField(payload, "MpesaReceiptNumber", "mpesa_transaction_id")
	if receipt == "" {
		// Failed prompts carry no receipt; synthesize a stable id so the
		// audit record and dedup key still exist
		if checkoutID != "" {
			receipt = "UNK-" + checkoutID
		} else {
			receipt = "UNK-no-checkout"
		}
	}

	return &models.CallbackEvent{
		CheckoutRequestID:  checkoutID,
		MpesaTransactionID: receipt,
		Amount:             int64Field(payload, "Amount", "amount"),
		// A payload without a result code must not read as the success
		// value; -1 keeps the request on the failure path
		ResultCode: intField(payload, -1, "ResultCode", "result_code"),
		ResultDesc: stringField(payload, "ResultDesc", "result_desc"),
		RawPayload: json.RawMessage(body),
	}, nil
}

func stringField(payload map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if raw, ok := payload[key]; ok {
			switch v := raw.(type) {
			case string:
				return strings.TrimSpace(v)
			case float64:
				return strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
	}
	return ""
}

func intField(payload map[string]interface{}, def int, keys ...string) int {
	for _, key := range keys {
		if raw, ok := payload[key]; ok {
			switch v := raw.(type) {
			case float64:
				return int(v)
			case string:
				if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
					return n
				}
			}
		}
	}
	return def
}

func int64Field(payload map[string]interface{}, keys ...string) int64 {
	for _, key := range keys {
		if raw, ok := payload[key]; ok {
			switch v := raw.(type) {
			case float64:
				return int64(v)
			case string:
				if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
					return n
				}
			}
		}
	}
	return 0
}
