package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCallbackMiddleware(t *testing.T, secret, provided string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/callback", nil)
	if provided != "" {
		req.Header.Set(CallbackSecretHeader, provided)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	err := ValidateCallbackSecret(secret)(next)(c)
	require.NoError(t, err)
	return rec
}

func TestValidateCallbackSecret_Valid(t *testing.T) {
	rec := runCallbackMiddleware(t, "cb-secret", "cb-secret")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidateCallbackSecret_Missing(t *testing.T) {
	rec := runCallbackMiddleware(t, "cb-secret", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidateCallbackSecret_Wrong(t *testing.T) {
	rec := runCallbackMiddleware(t, "cb-secret", "guess")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidateCallbackSecret_Unconfigured(t *testing.T) {
	rec := runCallbackMiddleware(t, "", "anything")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
