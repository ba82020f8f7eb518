package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/payments"
	"github.com/homeconnect/backend/services/payments/mocks"
)

func setupHandlerTest(t *testing.T) (*PaymentHandler, *mocks.MockPaymentUC, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(&models.Config{
		JWT:   models.JWTConfig{Secret: "test-secret"},
		Mpesa: models.MpesaConfig{CallbackSecret: "cb-secret"},
	}, uc)
	return h, uc, ctrl
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestInitiatePayment_Created(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	userID := uuid.New()
	requestID := uuid.New()

	c, rec := newContext(e, http.MethodPost, "/payments", `{"phone_number":"0712345678","amount":1500}`)
	c.Set("user_id", userID)

	uc.EXPECT().
		InitiatePayment(gomock.Any(), userID, gomock.Any()).
		Return(&models.InitiatePaymentResponse{
			RequestID:         requestID,
			Status:            models.PaymentStatusSent,
			CheckoutRequestID: "ws_CO_1",
		}, nil)

	require.NoError(t, h.InitiatePayment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "ws_CO_1")
	assert.Contains(t, rec.Body.String(), requestID.String())
}

func TestInitiatePayment_InvalidInput(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "/payments", `{"phone_number":"12345","amount":100}`)
	c.Set("user_id", uuid.New())

	uc.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, payments.ErrInvalidInput)

	require.NoError(t, h.InitiatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInitiatePayment_GatewayRejected(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	requestID := uuid.New()
	c, rec := newContext(e, http.MethodPost, "/payments", `{"phone_number":"0712345678","amount":100}`)
	c.Set("user_id", uuid.New())

	uc.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.InitiatePaymentResponse{
			RequestID: requestID,
			Status:    models.PaymentStatusFailed,
		}, payments.ErrGatewayRejected)

	require.NoError(t, h.InitiatePayment(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	// The failed request id is still reported so the caller can retry
	assert.Contains(t, rec.Body.String(), requestID.String())
}

func TestInitiatePayment_MissingAuth(t *testing.T) {
	h, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "/payments", `{"phone_number":"0712345678","amount":100}`)

	require.NoError(t, h.InitiatePayment(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetPaymentStatus_OK(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	userID := uuid.New()
	requestID := uuid.New()

	c, rec := newContext(e, http.MethodGet, "/payments/"+requestID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("user_id", userID)

	uc.EXPECT().
		GetPaymentStatus(gomock.Any(), userID, requestID).
		Return(&models.PaymentStatusResponse{
			RequestID: requestID,
			Status:    models.PaymentStatusCompleted,
		}, nil)

	require.NoError(t, h.GetPaymentStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(models.PaymentStatusCompleted))
}

func TestGetPaymentStatus_InvalidID(t *testing.T) {
	h, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/payments/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set("user_id", uuid.New())

	require.NoError(t, h.GetPaymentStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPaymentStatus_NotFound(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	requestID := uuid.New()
	c, rec := newContext(e, http.MethodGet, "/payments/"+requestID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("user_id", uuid.New())

	uc.EXPECT().
		GetPaymentStatus(gomock.Any(), gomock.Any(), requestID).
		Return(nil, payments.ErrPaymentRequestNotFound)

	require.NoError(t, h.GetPaymentStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCallback_OK(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	body := `{"CheckoutRequestID":"ws_CO_X","MpesaReceiptNumber":"R1","Amount":1500,"ResultCode":0,"ResultDesc":"Success"}`
	c, rec := newContext(e, http.MethodPost, "/payments/callback", body)

	uc.EXPECT().
		HandleCallback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, event *models.CallbackEvent) (*models.CallbackAck, error) {
			assert.Equal(t, "ws_CO_X", event.CheckoutRequestID)
			assert.Equal(t, "R1", event.MpesaTransactionID)
			assert.Equal(t, int64(1500), event.Amount)
			assert.Equal(t, 0, event.ResultCode)
			return &models.CallbackAck{Received: true, TransactionID: "R1", Matched: true}, nil
		})

	require.NoError(t, h.HandleCallback(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var ack models.CallbackAck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack.Received)
}

func TestHandleCallback_UnmatchedRequest(t *testing.T) {
	h, uc, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	body := `{"CheckoutRequestID":"Z","MpesaReceiptNumber":"R9","Amount":700,"ResultCode":0}`
	c, rec := newContext(e, http.MethodPost, "/payments/callback", body)

	uc.EXPECT().
		HandleCallback(gomock.Any(), gomock.Any()).
		Return(&models.CallbackAck{Received: true, TransactionID: "R9"}, nil)

	require.NoError(t, h.HandleCallback(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCallback_MalformedJSON(t *testing.T) {
	h, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "/payments/callback", `{not json`)

	require.NoError(t, h.HandleCallback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNormalizeCallback_SnakeCaseKeys(t *testing.T) {
	body := []byte(`{"checkout_request_id":"ws_CO_Y","mpesa_transaction_id":"R2","amount":"700","result_code":"1032","result_desc":"Cancelled"}`)

	event, err := normalizeCallback(body)
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_Y", event.CheckoutRequestID)
	assert.Equal(t, "R2", event.MpesaTransactionID)
	assert.Equal(t, int64(700), event.Amount)
	assert.Equal(t, 1032, event.ResultCode)
	assert.Equal(t, "Cancelled", event.ResultDesc)
	assert.JSONEq(t, string(body), string(event.RawPayload))
}

func TestNormalizeCallback_MissingReceiptFallback(t *testing.T) {
	event, err := normalizeCallback([]byte(`{"CheckoutRequestID":"ws_CO_Z","ResultCode":1032}`))
	require.NoError(t, err)
	assert.Equal(t, "UNK-ws_CO_Z", event.MpesaTransactionID)
}

func TestNormalizeCallback_MissingEverything(t *testing.T) {
	event, err := normalizeCallback([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "UNK-no-checkout", event.MpesaTransactionID)
	assert.Empty(t, event.CheckoutRequestID)
}

func TestNormalizeCallback_MissingResultCodeIsNotSuccess(t *testing.T) {
	// A truncated payload without a result code must never normalize to
	// the gateway's success value
	body := []byte(`{"CheckoutRequestID":"ws_CO_X","MpesaReceiptNumber":"R1","Amount":500}`)

	event, err := normalizeCallback(body)
	require.NoError(t, err)
	assert.Equal(t, -1, event.ResultCode)
	assert.NotEqual(t, 0, event.ResultCode)
}

func TestNormalizeCallback_UnparseableResultCodeIsNotSuccess(t *testing.T) {
	event, err := normalizeCallback([]byte(`{"CheckoutRequestID":"ws_CO_X","ResultCode":"oops"}`))
	require.NoError(t, err)
	assert.Equal(t, -1, event.ResultCode)
}

func TestNormalizeCallback_CamelCasePrecedence(t *testing.T) {
	// When both spellings are present the CamelCase key wins
	body := []byte(`{"CheckoutRequestID":"camel","checkout_request_id":"snake"}`)

	event, err := normalizeCallback(body)
	require.NoError(t, err)
	assert.Equal(t, "camel", event.CheckoutRequestID)
}
