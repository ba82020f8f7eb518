package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/homeconnect/backend/internal/pkg/logger"
	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/internal/utils"
)

// stkPushPayload is the wire format the gateway expects for an STK push
type stkPushPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// stkPushResult is the gateway's synchronous answer
type stkPushResult struct {
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
}

// StkPush asks the gateway to start a customer-facing payment prompt
func (g *PaymentGW) StkPush(ctx context.Context, req *models.StkPushRequest) (*models.StkPushResponse, error) {
	payload := stkPushPayload{
		BusinessShortCode: g.cfg.Mpesa.ShortCode,
		Amount:            req.Amount,
		PartyA:            req.PhoneNumber,
		CallBackURL:       req.CallbackURL,
		AccountReference:  req.AccountReference,
		TransactionDesc:   req.Description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stk push payload: %w", err)
	}

	url := g.cfg.Mpesa.BaseURL + "/mpesa/stkpush/v1/processrequest"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create stk push request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.Mpesa.APIKey)

	g.logger.Info("Sending STK push",
		logger.String("phone", utils.MaskPhoneNumber(req.PhoneNumber)),
		logger.Int64("amount", req.Amount))

	resp, err := g.client.Do(ctx, httpReq)
	if err != nil {
		return nil, fmt.Errorf("stk push request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read stk push response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stk push rejected with status %d: %s", resp.StatusCode, utils.Truncate(string(respBody), 200))
	}

	var result stkPushResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode stk push response: %w", err)
	}

	return &models.StkPushResponse{
		CheckoutRequestID:   result.CheckoutRequestID,
		ResponseCode:        result.ResponseCode,
		ResponseDescription: result.ResponseDescription,
	}, nil
}
